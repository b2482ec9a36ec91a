package main

import (
	"github.com/joho/godotenv"

	"github.com/kruvl/gloria-proyect/internal/app"
)

func main() {
	// optional .env for local runs; real deployments set the environment
	_ = godotenv.Load()

	app.Run()
}

package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr      string
	DatabaseURL   string // empty means in-memory storage
	InternalToken string
	ExportDir     string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		DatabaseURL:   env("DATABASE_URL", ""),
		InternalToken: mustEnv("INTERNAL_TOKEN"),
		ExportDir:     env("EXPORT_DIR", "exports"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

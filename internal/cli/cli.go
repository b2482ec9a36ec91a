// Package cli implements the cotiza command line: building, exporting
// and persisting quotations against a local data directory, the offline
// counterpart of the HTTP service.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
	"github.com/kruvl/gloria-proyect/internal/infra/kv"
)

// Commands lists every subcommand for registration by main.
var Commands = []subcommands.Command{
	&exportCmd{},
	&saveCmd{},
	&listCmd{},
	&showCmd{},
}

// quoteFile is the on-disk JSON a user hands to export/save. Same shape
// as the HTTP request body: numeric fields are raw text.
type quoteFile struct {
	Date       string `json:"date"`
	Reference  string `json:"reference"`
	TaxPercent string `json:"tax_percent"`
	Items      []struct {
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		UnitPrice   string `json:"unit_price"`
	} `json:"items"`
}

func readQuoteFile(path string) (*quote.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var qf quoteFile
	if err := json.Unmarshal(raw, &qf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m := &quote.Model{Date: qf.Date, Reference: qf.Reference, TaxPercent: qf.TaxPercent}
	if m.TaxPercent == "" {
		m.TaxPercent = "0"
	}
	for _, it := range qf.Items {
		m.AppendItem(it.Description, it.Quantity, it.UnitPrice)
	}
	return m, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cotiza"
	}
	return filepath.Join(home, ".cotiza")
}

func openStore(dataDir string) (*store.Store, error) {
	backend, err := kv.NewDir(dataDir)
	if err != nil {
		return nil, err
	}
	return store.New(backend), nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

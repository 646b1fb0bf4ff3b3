package storeserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vmunix/vmanager/internal/catalog"
)

// SeedData is a json-server style database file:
// {"authors": [...], "categories": [...]}.
type SeedData struct {
	Authors    []catalog.Author   `json:"authors"`
	Categories []catalog.Category `json:"categories"`
}

// ReadSeed decodes seed data from r.
func ReadSeed(r io.Reader) (SeedData, error) {
	var data SeedData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return SeedData{}, fmt.Errorf("decode seed: %w", err)
	}
	return data, nil
}

// ReadSeedFile decodes seed data from the file at path.
func ReadSeedFile(path string) (SeedData, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("open seed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadSeed(f)
}

// SeedIfEmpty loads data when the store holds nothing yet. It reports
// whether anything was loaded.
func (s *Store) SeedIfEmpty(ctx context.Context, data SeedData, log *slog.Logger) (bool, error) {
	if log == nil {
		log = slog.Default()
	}
	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		log.Debug("store not empty, skipping seed")
		return false, nil
	}
	if err := s.Load(ctx, data); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	log.Info("store seeded", "authors", len(data.Authors), "categories", len(data.Categories))
	return true, nil
}

package series

import (
	"fmt"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/richard-senior/standings/internal/logger"
)

// Archive snapshots store the same delimited rows as Save, brotli
// compressed. Useful for keeping end-of-season tables around without
// them being picked up as live table files.

// WriteArchive writes a compressed snapshot of the table to path
func WriteArchive(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	w := brotli.NewWriter(f)
	if err = encode(t, w); err != nil {
		f.Close()
		return err
	}
	if err = w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush archive: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close archive file: %w", err)
	}
	logger.Debug("Wrote archive", path, t.Len())
	return nil
}

// ReadArchive reads a compressed snapshot back into a fresh table.
// Parse failures abort the whole read, same as Load.
func ReadArchive(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %w", err)
	}
	defer f.Close()

	teams, err := decode(brotli.NewReader(f))
	if err != nil {
		return nil, err
	}
	return &Table{teams: teams}, nil
}

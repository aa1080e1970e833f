package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

var ErrWrite = errors.New("artifact write failed")

// WriteSnapshot persists rows as a parquet snapshot at path. The file is
// staged under a temporary name in the destination directory and renamed into
// place, so a failed write never leaves a partial snapshot visible and a
// prior snapshot survives until the new one is complete.
func WriteSnapshot[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	writer := parquet.NewGenericWriter[T](tmp)

	if _, err = writer.Write(rows); err == nil {
		err = writer.Close()
	}

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// ReadSnapshot loads all rows from a parquet snapshot written by
// WriteSnapshot.
func ReadSnapshot[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	return rows, nil
}

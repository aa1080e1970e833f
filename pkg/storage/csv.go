package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteTable writes a delimited table with a header row, atomically via a
// temporary file in the destination directory. Gold exports go through here
// so a failed export never leaves a truncated file behind.
func WriteTable(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	writer := csv.NewWriter(tmp)

	err = writer.Write(header)

	for index := 0; err == nil && index < len(rows); index++ {
		err = writer.Write(rows[index])
	}

	if err == nil {
		writer.Flush()
		err = writer.Error()
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

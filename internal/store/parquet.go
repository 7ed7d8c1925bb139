package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const changeSchema = "change_row_v1"

// WriteChangesParquet writes change rows to outPath through a temp file and
// an atomic rename. compression is "zstd" or "none".
func WriteChangesParquet(outPath string, rows []ChangeRow, compression string) error {
	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	options := []parquet.WriterOption{parquet.KeyValueMetadata("schema", changeSchema)}
	if compression == "zstd" {
		options = append(options, parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}))
	}

	if err := parquet.WriteFile(tmpPath, rows, options...); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadChangesParquet reads every change row from a file written by
// WriteChangesParquet.
func ReadChangesParquet(path string) ([]ChangeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[ChangeRow](pf)
	defer reader.Close()

	rows := make([]ChangeRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows[:n], nil
}

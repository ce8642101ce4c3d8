// Package storage provides a file-backed tabular record store with a fixed
// column schema. Records are flat CSV rows; the first schema column is the
// record key.
package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"brewline/pkg/lifecycle"
)

// Record is one raw row of the store, ordered by the schema columns.
type Record []string

// System manages tabular record storage and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the backing file.
	Start(lc *lifecycle.Coordinator) error
	// Initialize ensures the backing file exists with the schema header.
	// Idempotent: a pre-existing store with a matching header is left untouched.
	Initialize(ctx context.Context) error
	// Append adds one record, rewriting the file atomically.
	Append(ctx context.Context, rec Record) error
	// ScanAll returns every record currently stored, in insertion order.
	ScanAll(ctx context.Context) ([]Record, error)
	// FindByKey returns the first record whose key column matches.
	// Returns ErrNotFound if no record matches.
	FindByKey(ctx context.Context, key string) (Record, error)
}

type file struct {
	path   string
	schema []string
	logger *slog.Logger

	// serializes all access to the backing file; appends are
	// read-modify-rewrite so concurrent writers would race without it
	mu sync.Mutex
}

// New creates a tabular store from the given configuration and column schema.
// The file is not touched until Initialize (or Start) runs.
func New(cfg *Config, schema []string, logger *slog.Logger) (System, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("schema must not be empty")
	}

	return &file{
		path:   cfg.Path,
		schema: slices.Clone(schema),
		logger: logger.With("system", "storage"),
	}, nil
}

func (f *file) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system")

	lc.OnStartup(func() {
		if err := f.Initialize(lc.Context()); err != nil {
			f.logger.Error("store initialization failed", "error", err)
			return
		}
		f.logger.Info("store ready", "path", f.path)
	})

	return nil
}

func (f *file) Initialize(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		_, err := f.readAll()
		return err
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat store file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	return f.writeAll(nil)
}

func (f *file) Append(_ context.Context, rec Record) error {
	if len(rec) != len(f.schema) {
		return fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(rec), len(f.schema))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	rows, err := f.readAll()
	if err != nil {
		return err
	}

	rows = append(rows, rec)
	if err := f.writeAll(rows); err != nil {
		return err
	}

	f.logger.Info("record appended", "key", rec[0], "total", len(rows))
	return nil
}

func (f *file) ScanAll(_ context.Context) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.readAll()
}

func (f *file) FindByKey(ctx context.Context, key string) (Record, error) {
	rows, err := f.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row[0] == key {
			return row, nil
		}
	}

	return nil, fmt.Errorf("%w: key %s", ErrNotFound, key)
}

// readAll parses the backing file and validates its header against the schema.
// Caller must hold the mutex.
func (f *file) readAll() ([]Record, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if len(rows) == 0 || !slices.Equal(rows[0], f.schema) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, f.path)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record(row))
	}

	return records, nil
}

// writeAll rewrites the backing file via a temp file in the same directory and
// an atomic rename, so a crash mid-write leaves the previous content intact.
// Caller must hold the mutex.
func (f *file) writeAll(rows []Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(f.schema); err != nil {
		tmp.Close()
		return fmt.Errorf("write store header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write store record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}

// Package jsonfile implements ports.Store with one JSON array file per
// collection (<dir>/<collection>.json). Reads load the whole file; writes
// replace it atomically through a temp file and rename.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	fileExt  = ".json"
	filePerm = 0o644
	dirPerm  = 0o755
)

// ErrInvalidCollection is returned for collection names that are not a
// single plain path element.
var ErrInvalidCollection = errors.New("jsonfile: invalid collection name")

// Store is a directory of collection files.
type Store struct {
	dir     string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Store rooted at dir. Metrics may be nil.
func New(dir string, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{dir: dir, metrics: metrics, logger: logger}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Init creates the data directory and seeds an empty array file for every
// collection that does not exist yet. Existing files are left untouched.
func (s *Store) Init(ctx context.Context, collections ...string) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("creating data dir %s: %w", s.dir, err)
	}
	for _, c := range collections {
		path, err := s.path(c)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if err := writeFileAtomic(ctx, path, []byte("[]"), filePerm); err != nil {
			return fmt.Errorf("seeding %s: %w", path, err)
		}
		s.logger.InfoContext(ctx, "seeded empty collection", slog.String("collection", c))
	}
	return nil
}

// ReadAll loads the whole collection. A file that is empty, or that has
// never been written, is an empty collection.
func (s *Store) ReadAll(ctx context.Context, collection string) (records []domain.Record, err error) {
	start := time.Now()
	defer func() { s.record(ctx, "read", collection, start, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(collection)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Record{}, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// WriteAll replaces the collection file. Readers see either the old or the
// new contents, never a partial write.
func (s *Store) WriteAll(ctx context.Context, collection string, records []domain.Record) (err error) {
	start := time.Now()
	defer func() { s.record(ctx, "write", collection, start, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(collection)
	if err != nil {
		return err
	}

	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}

	if err := writeFileAtomic(ctx, path, data, filePerm); err != nil {
		return fmt.Errorf("writing collection %s: %w", collection, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store"
}

// HealthCheck verifies that the data directory exists and accepts writes.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("store: %s is not a directory", s.dir)
	}
	probe, err := os.CreateTemp(s.dir, ".health-*")
	if err != nil {
		return fmt.Errorf("store: data dir not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

func (s *Store) path(collection string) (string, error) {
	if collection == "" || collection == "." || collection == ".." ||
		strings.ContainsAny(collection, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}
	return filepath.Join(s.dir, collection+fileExt), nil
}

func (s *Store) record(ctx context.Context, op, collection string, start time.Time, err error) {
	if err != nil {
		s.logger.ErrorContext(ctx, "store operation failed",
			slog.String("operation", op),
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrCollection.String(collection),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

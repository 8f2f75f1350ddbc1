// Package app provides the application services behind the HTTP handlers:
// the generic owned-resource CRUD engine, user registration and lookup, and
// authentication. Services talk to storage and third parties only through
// port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/schema"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

var _ ports.ResourceService = (*ResourceService)(nil)

// ResourceConfig describes one owned resource kind.
type ResourceConfig struct {
	// Collection is the store collection holding the records ("tasks").
	Collection string

	// Schema validates request bodies.
	Schema schema.Schema

	// BeforeCreate runs after the body validated and before anything is
	// written. A non-nil error aborts the create and is returned as is.
	BeforeCreate func(ctx context.Context, rec domain.Record) error

	// BeforeUpdate runs on the raw body before the record is looked up.
	BeforeUpdate func(ctx context.Context, body map[string]any) error

	// Expand decorates the record returned by Get.
	Expand func(ctx context.Context, rec domain.Record) (domain.Record, error)
}

// ResourceService is the CRUD engine shared by tasks and places. Records are
// visible to their owner and to admins only.
type ResourceService struct {
	cfg     ResourceConfig
	noun    string
	store   ports.Store
	locks   *CollectionLocks
	metrics *telemetry.Metrics
	logger  *slog.Logger
	newID   func() string
}

// NewResourceService creates a ResourceService. A nil locks gets a private
// lock set; nil metrics disables metric recording.
func NewResourceService(
	cfg ResourceConfig,
	store ports.Store,
	locks *CollectionLocks,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ResourceService {
	if locks == nil {
		locks = NewCollectionLocks()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResourceService{
		cfg:     cfg,
		noun:    strings.ToLower(cfg.Schema.Resource()),
		store:   store,
		locks:   locks,
		metrics: metrics,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// List returns the caller's records, or every record for an admin, in
// stored order.
func (s *ResourceService) List(ctx context.Context) ([]domain.Record, error) {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.read(ctx, "List")
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if p.CanAccess(rec) {
			visible = append(visible, rec)
		}
	}
	return visible, nil
}

// Get returns one record, decorated by the Expand hook if configured.
func (s *ResourceService) Get(ctx context.Context, id string) (domain.Record, error) {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.read(ctx, "Get")
	if err != nil {
		return nil, err
	}

	i := domain.IndexOf(records, id)
	if i < 0 {
		return nil, s.notFound()
	}
	if !p.CanAccess(records[i]) {
		return nil, s.forbidden("view")
	}

	rec := records[i]
	if s.cfg.Expand != nil {
		if rec, err = s.cfg.Expand(ctx, rec); err != nil {
			s.logFailure(ctx, "Get", err, slog.String("id", id))
			return nil, err
		}
	}
	return rec, nil
}

// Create validates body and appends a new record owned by the caller.
func (s *ResourceService) Create(ctx context.Context, body map[string]any) (domain.Record, error) {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating "+s.noun)

	acc := validation.NewAccumulator()
	rec, ok := s.cfg.Schema.Map(acc, body, nil)
	if !ok {
		return nil, s.invalid(ctx, acc)
	}

	if s.cfg.BeforeCreate != nil {
		if err := s.cfg.BeforeCreate(ctx, rec); err != nil {
			return nil, err
		}
	}

	rec[domain.FieldID] = s.newID()
	rec[domain.FieldUserID] = p.ID

	unlock := s.locks.Lock(s.cfg.Collection)
	defer unlock()

	records, err := s.read(ctx, "Create")
	if err != nil {
		return nil, err
	}
	if err := s.write(ctx, "Create", append(records, rec)); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Update applies the settable fields present in body to the record. Fields
// absent from body keep their stored values.
func (s *ResourceService) Update(ctx context.Context, id string, body map[string]any) (domain.Record, error) {
	if s.cfg.BeforeUpdate != nil {
		if err := s.cfg.BeforeUpdate(ctx, body); err != nil {
			return nil, err
		}
	}

	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating "+s.noun, slog.String("id", id))

	unlock := s.locks.Lock(s.cfg.Collection)
	defer unlock()

	records, err := s.read(ctx, "Update")
	if err != nil {
		return nil, err
	}

	i := domain.IndexOf(records, id)
	if i < 0 {
		return nil, s.notFound()
	}
	if !p.CanAccess(records[i]) {
		return nil, s.forbidden("modify")
	}

	acc := validation.NewAccumulator()
	updated, ok := s.cfg.Schema.Restrict(body).Map(acc, body, records[i])
	if !ok {
		return nil, s.invalid(ctx, acc)
	}

	records[i] = updated
	if err := s.write(ctx, "Update", records); err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes the record.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting "+s.noun, slog.String("id", id))

	unlock := s.locks.Lock(s.cfg.Collection)
	defer unlock()

	records, err := s.read(ctx, "Delete")
	if err != nil {
		return err
	}

	i := domain.IndexOf(records, id)
	if i < 0 {
		return s.notFound()
	}
	if !p.CanAccess(records[i]) {
		return s.forbidden("delete")
	}

	remaining := make([]domain.Record, 0, len(records)-1)
	remaining = append(remaining, records[:i]...)
	remaining = append(remaining, records[i+1:]...)
	return s.write(ctx, "Delete", remaining)
}

func (s *ResourceService) read(ctx context.Context, op string) ([]domain.Record, error) {
	records, err := s.store.ReadAll(ctx, s.cfg.Collection)
	if err != nil {
		s.logFailure(ctx, op, err)
		return nil, fmt.Errorf("reading %s: %w", s.cfg.Collection, err)
	}
	return records, nil
}

func (s *ResourceService) write(ctx context.Context, op string, records []domain.Record) error {
	if err := s.store.WriteAll(ctx, s.cfg.Collection, records); err != nil {
		s.logFailure(ctx, op, err)
		return fmt.Errorf("writing %s: %w", s.cfg.Collection, err)
	}
	return nil
}

func (s *ResourceService) logFailure(ctx context.Context, op string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", op),
		slog.String("collection", s.cfg.Collection),
		slog.Any("error", err),
	}, attrs...)
	s.logger.ErrorContext(ctx, "failed to "+strings.ToLower(op)+" "+s.noun, args...)
}

func (s *ResourceService) invalid(ctx context.Context, acc *validation.Accumulator) error {
	recordValidationFailure(ctx, s.metrics, s.noun)
	return domain.NewValidationError(acc)
}

func (s *ResourceService) notFound() error {
	return domain.NewClientError(domain.ErrNotFound, s.cfg.Schema.Resource()+" not found.")
}

func (s *ResourceService) forbidden(verb string) error {
	return domain.NewClientError(domain.ErrForbidden,
		fmt.Sprintf("You do not have permission to %s this %s.", verb, s.noun))
}

func recordValidationFailure(ctx context.Context, metrics *telemetry.Metrics, resource string) {
	if metrics == nil {
		return
	}
	metrics.ValidationFailureTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResource.String(resource)))
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/schema"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
	"github.com/jsamuelsen11/taskplace-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

var _ ports.UserService = (*UserService)(nil)

// Client-facing user messages.
const (
	MsgEmailRejected   = "Email address has failed additional verification."
	MsgEmailTaken      = "A user with this email address already exists."
	MsgCannotListUsers = "You do not have permission to list users."
	MsgCannotViewUser  = "You do not have permission to view this user."
	MsgUserNotFound    = "User not found."
)

const userResource = "user"

// UserService registers and looks up users. Stored records hold the bcrypt
// hash; every record it returns has the password removed.
type UserService struct {
	store    ports.Store
	hasher   ports.PasswordHasher
	verifier ports.EmailVerifier
	schema   schema.Schema
	locks    *CollectionLocks
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	newID    func() string
}

// NewUserService creates a UserService. A nil locks gets a private lock set;
// nil metrics disables metric recording.
func NewUserService(
	store ports.Store,
	hasher ports.PasswordHasher,
	verifier ports.EmailVerifier,
	locks *CollectionLocks,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *UserService {
	if locks == nil {
		locks = NewCollectionLocks()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		schema:   schema.User(),
		locks:    locks,
		metrics:  metrics,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Register validates body, runs the external email check, and stores a new
// user with access "user". Body fields outside the user schema, including
// access, are ignored.
func (s *UserService) Register(ctx context.Context, body map[string]any) (domain.Record, error) {
	s.logger.InfoContext(ctx, "registering user")

	acc := validation.NewAccumulator()
	rec, _ := s.schema.Map(acc, body, nil)
	password := body[domain.FieldPassword]
	s.schema.Check(acc, domain.FieldPassword, password)
	if acc.HasErrors() {
		recordValidationFailure(ctx, s.metrics, userResource)
		return nil, domain.NewValidationError(acc)
	}

	email := rec.String(domain.FieldEmail)

	var (
		hash     string
		verified bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hash, err = s.hasher.Hash(gctx, password.(string))
		return err
	})
	g.Go(func() error {
		verified = s.verifier.Verify(gctx, email)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "RegisterUser"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if !verified {
		return nil, domain.NewClientError(domain.ErrUnprocessable, MsgEmailRejected)
	}

	s.schema.Assign(acc, rec, domain.FieldAccess, domain.AccessUser)
	rec[domain.FieldPassword] = hash

	unlock := s.locks.Lock(ports.CollectionUsers)
	defer unlock()

	users, err := s.readUsers(ctx, "RegisterUser")
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.String(domain.FieldEmail) == email {
			return nil, domain.NewClientError(domain.ErrConflict, MsgEmailTaken)
		}
	}

	rec[domain.FieldID] = s.newID()
	if err := s.store.WriteAll(ctx, ports.CollectionUsers, append(users, rec)); err != nil {
		s.logger.ErrorContext(ctx, "failed to store user",
			slog.String("operation", "RegisterUser"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("writing users: %w", err)
	}

	return rec.Public(), nil
}

// List returns every user. Admin only.
func (s *UserService) List(ctx context.Context) ([]domain.Record, error) {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, domain.NewClientError(domain.ErrForbidden, MsgCannotListUsers)
	}

	users, err := s.readUsers(ctx, "ListUsers")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Record, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

// Get returns one user. Callers may view themselves; admins may view anyone.
func (s *UserService) Get(ctx context.Context, id string) (domain.Record, error) {
	p, err := currentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.readUsers(ctx, "GetUser")
	if err != nil {
		return nil, err
	}

	i := domain.IndexOf(users, id)
	if i < 0 {
		return nil, domain.NewClientError(domain.ErrNotFound, MsgUserNotFound)
	}
	if users[i].ID() != p.ID && !p.IsAdmin() {
		return nil, domain.NewClientError(domain.ErrForbidden, MsgCannotViewUser)
	}
	return users[i].Public(), nil
}

func (s *UserService) readUsers(ctx context.Context, op string) ([]domain.Record, error) {
	users, err := s.store.ReadAll(ctx, ports.CollectionUsers)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read users",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("reading users: %w", err)
	}
	return users, nil
}

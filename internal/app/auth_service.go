package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

var _ ports.AuthService = (*AuthService)(nil)

// MsgBadCredentials is returned for any failed login.
const MsgBadCredentials = "Invalid email address or password."

// AuthService handles login and token authentication.
type AuthService struct {
	store  ports.Store
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(store ports.Store, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{store: store, hasher: hasher, tokens: tokens, logger: logger}
}

// Login checks the password of the first stored user whose email matches
// exactly and issues a token for them. Later users sharing the email are
// never considered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	users, err := s.store.ReadAll(ctx, ports.CollectionUsers)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read users",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("reading users: %w", err)
	}

	var user domain.Record
	for _, u := range users {
		if email != "" && u.String(domain.FieldEmail) == email {
			user = u
			break
		}
	}
	if user == nil {
		return nil, domain.NewClientError(domain.ErrUnauthorized, MsgBadCredentials)
	}

	ok, err := s.hasher.Compare(ctx, user.String(domain.FieldPassword), password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compare password",
			slog.String("operation", "Login"),
			slog.String("user_id", user.ID()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("comparing password: %w", err)
	}
	if !ok {
		return nil, domain.NewClientError(domain.ErrUnauthorized, MsgBadCredentials)
	}

	token, err := s.tokens.Issue(domain.Principal{ID: user.ID(), Access: user.String(domain.FieldAccess)})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.String("user_id", user.ID()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID()))
	return &ports.Session{User: user.Public(), Token: token}, nil
}

// Authenticate verifies token and resolves its subject against the stored
// users. The returned principal's access comes from the stored record, so a
// role change takes effect without a new token. A token whose user no longer
// exists is rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.NewClientError(domain.ErrUnauthorized, MsgNoToken)
	}

	claimed, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.DebugContext(ctx, "rejected access token", slog.Any("error", err))
		return domain.Principal{}, domain.NewClientError(domain.ErrUnauthorized, MsgInvalidToken)
	}

	user, err := loadUser(ctx, s.store, claimed.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load token subject",
			slog.String("operation", "Authenticate"),
			slog.String("user_id", claimed.ID),
			slog.Any("error", err),
		)
		return domain.Principal{}, err
	}
	if user == nil {
		return domain.Principal{}, domain.NewClientError(domain.ErrUnauthorized, MsgInvalidToken)
	}

	return domain.Principal{ID: user.ID(), Access: user.String(domain.FieldAccess)}, nil
}

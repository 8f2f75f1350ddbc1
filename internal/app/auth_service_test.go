package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appctx "github.com/jsamuelsen11/taskplace-api/internal/app/context"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
	"github.com/jsamuelsen11/taskplace-api/mocks"
)

type authFixture struct {
	store  ports.Store
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
	svc    *AuthService
}

func newAuthFixture(t *testing.T, users ...domain.Record) authFixture {
	t.Helper()
	store := newTestStore(t)
	if len(users) > 0 {
		seed(t, store, ports.CollectionUsers, users...)
	}
	hasher := mocks.NewMockPasswordHasher(t)
	tokens := mocks.NewMockTokenIssuer(t)
	return authFixture{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		svc:    NewAuthService(store, hasher, tokens, discardLogger()),
	}
}

// --- Login ---

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	t.Run("issues token for matching credentials", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t, user("u1", "a@example.com", domain.AccessAdmin))

		f.hasher.EXPECT().Compare(mock.Anything, "$2a$04$hash", "secret-pass").Return(true, nil)
		f.tokens.EXPECT().Issue(domain.Principal{ID: "u1", Access: domain.AccessAdmin}).Return("signed", nil)

		got, err := f.svc.Login(context.Background(), "a@example.com", "secret-pass")
		if err != nil {
			t.Fatalf("Login() error = %v, want nil", err)
		}
		if got.Token != "signed" {
			t.Errorf("Token = %q, want %q", got.Token, "signed")
		}
		if _, ok := got.User[domain.FieldPassword]; ok {
			t.Error("session user contains password")
		}
	})

	t.Run("only the first user with the email is considered", func(t *testing.T) {
		t.Parallel()
		first := user("u1", "dup@example.com", domain.AccessUser)
		second := user("u2", "dup@example.com", domain.AccessUser)
		second[domain.FieldPassword] = "second-hash"
		f := newAuthFixture(t, first, second)

		f.hasher.EXPECT().Compare(mock.Anything, "$2a$04$hash", "second-pass").Return(false, nil)

		_, err := f.svc.Login(context.Background(), "dup@example.com", "second-pass")
		if msg := clientMessage(t, err, domain.ErrUnauthorized); msg != MsgBadCredentials {
			t.Errorf("message = %q, want %q", msg, MsgBadCredentials)
		}
	})

	t.Run("unknown email is rejected without comparing", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t, user("u1", "a@example.com", domain.AccessUser))

		_, err := f.svc.Login(context.Background(), "b@example.com", "whatever")
		if msg := clientMessage(t, err, domain.ErrUnauthorized); msg != MsgBadCredentials {
			t.Errorf("message = %q, want %q", msg, MsgBadCredentials)
		}
	})

	t.Run("empty email never matches", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t, user("u1", "", domain.AccessUser))

		_, err := f.svc.Login(context.Background(), "", "whatever")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Login() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("malformed hash is a server error", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t, user("u1", "a@example.com", domain.AccessUser))
		boom := errors.New("bad hash")

		f.hasher.EXPECT().Compare(mock.Anything, mock.Anything, mock.Anything).Return(false, boom)

		_, err := f.svc.Login(context.Background(), "a@example.com", "pw")
		if !errors.Is(err, boom) {
			t.Errorf("Login() error = %v, want wrapping %v", err, boom)
		}
	})
}

// --- Authenticate ---

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("access comes from the stored user", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t, user("u1", "a@example.com", domain.AccessAdmin))

		f.tokens.EXPECT().Verify("tok").Return(domain.Principal{ID: "u1", Access: domain.AccessUser}, nil)

		got, err := f.svc.Authenticate(context.Background(), "tok")
		if err != nil {
			t.Fatalf("Authenticate() error = %v, want nil", err)
		}
		if got.ID != "u1" || got.Access != domain.AccessAdmin {
			t.Errorf("Authenticate() = %+v, want u1/admin", got)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t)

		_, err := f.svc.Authenticate(context.Background(), "")
		if msg := clientMessage(t, err, domain.ErrUnauthorized); msg != MsgNoToken {
			t.Errorf("message = %q, want %q", msg, MsgNoToken)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t)

		f.tokens.EXPECT().Verify("tok").Return(domain.Principal{}, errors.New("expired"))

		_, err := f.svc.Authenticate(context.Background(), "tok")
		if msg := clientMessage(t, err, domain.ErrUnauthorized); msg != MsgInvalidToken {
			t.Errorf("message = %q, want %q", msg, MsgInvalidToken)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()
		f := newAuthFixture(t)

		f.tokens.EXPECT().Verify("tok").Return(domain.Principal{ID: "gone"}, nil)

		_, err := f.svc.Authenticate(context.Background(), "tok")
		if msg := clientMessage(t, err, domain.ErrUnauthorized); msg != MsgInvalidToken {
			t.Errorf("message = %q, want %q", msg, MsgInvalidToken)
		}
	})

	t.Run("user lookup is memoized per request", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		tokens := mocks.NewMockTokenIssuer(t)
		svc := NewAuthService(store, nil, tokens, discardLogger())

		tokens.EXPECT().Verify("tok").Return(domain.Principal{ID: "u1"}, nil).Times(2)
		store.EXPECT().ReadAll(mock.Anything, ports.CollectionUsers).
			Return([]domain.Record{user("u1", "a@example.com", domain.AccessUser)}, nil).Once()

		ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))
		for range 2 {
			if _, err := svc.Authenticate(ctx, "tok"); err != nil {
				t.Fatalf("Authenticate() error = %v, want nil", err)
			}
		}
	})
}

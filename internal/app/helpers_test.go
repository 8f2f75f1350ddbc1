package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/store/jsonfile"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	store := jsonfile.New(t.TempDir(), nil, discardLogger())
	if err := store.Init(context.Background(),
		ports.CollectionUsers, ports.CollectionTasks, ports.CollectionPlaces); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func seed(t *testing.T, store ports.Store, collection string, records ...domain.Record) {
	t.Helper()
	if err := store.WriteAll(context.Background(), collection, records); err != nil {
		t.Fatalf("WriteAll(%s) error = %v", collection, err)
	}
}

func asUser(id string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{ID: id, Access: domain.AccessUser})
}

func asAdmin(id string) context.Context {
	return domain.WithPrincipal(context.Background(), domain.Principal{ID: id, Access: domain.AccessAdmin})
}

func validTaskBody() map[string]any {
	return map[string]any{
		"name":        "Survey site",
		"description": "Check access road",
		"timeStart":   "2024-05-01 09:00:00",
		"timeEnd":     "2024-05-01 17:00:00",
	}
}

func validPlaceBody(taskID string) map[string]any {
	return map[string]any{
		"addressLine1": "1 High Street",
		"addressLine2": "",
		"city":         "Leeds",
		"county":       "West Yorkshire",
		"postcode":     "LS1 1AA",
		"country":      "UK",
		"taskId":       taskID,
	}
}

// clientMessage returns the caller-facing message of err, failing the test
// when err is not a *domain.ClientError of the wanted kind.
func clientMessage(t *testing.T, err, kind error) string {
	t.Helper()
	ce, ok := asClientError(err)
	if !ok {
		t.Fatalf("error = %v, want *domain.ClientError", err)
	}
	if ce.Kind != kind {
		t.Fatalf("error kind = %v, want %v", ce.Kind, kind)
	}
	return ce.Message
}

func asClientError(err error) (*domain.ClientError, bool) {
	var ce *domain.ClientError
	ok := errors.As(err, &ce)
	return ce, ok
}

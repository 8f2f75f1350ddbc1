package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
	"github.com/jsamuelsen11/taskplace-api/mocks"
)

// --- List ---

func TestResourceHandler_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResourceService(t)
	svc.EXPECT().List(mock.Anything).Return([]domain.Record{validTask()}, nil)

	rec := httptest.NewRecorder()
	handlers.NewResourceHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[[]map[string]any](t, rec)
	if len(got) != 1 || got[0]["id"] != "t1" {
		t.Errorf("body = %v, want one task t1", got)
	}
}

func TestResourceHandler_List_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResourceService(t)
	svc.EXPECT().List(mock.Anything).Return(nil, errors.New("reading tasks: unexpected EOF"))

	rec := httptest.NewRecorder()
	handlers.NewResourceHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	body := decodeJSON[errorBody](t, rec)
	if body.Type != dto.TypeServerError || body.Error != dto.ServerErrorMessage {
		t.Errorf("body = %+v, want generic server error", body)
	}
}

// --- Create ---

func TestResourceHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("passes decoded body and returns 201", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockResourceService(t)
		svc.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(b map[string]any) bool { return b["name"] == "Survey site" })).
			Return(validTask(), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", jsonBody(t, map[string]any{"name": "Survey site"}))
		rec := httptest.NewRecorder()
		handlers.NewResourceHandler(svc).Create(rec, req)

		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("malformed JSON is 400 without calling the service", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockResourceService(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"name":`))
		rec := httptest.NewRecorder()
		handlers.NewResourceHandler(svc).Create(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
		body := decodeJSON[errorBody](t, rec)
		if body.Error != handlers.MsgMalformedBody {
			t.Errorf("error = %q, want %q", body.Error, handlers.MsgMalformedBody)
		}
	})

	t.Run("array body is rejected", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockResourceService(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`[1,2]`))
		rec := httptest.NewRecorder()
		handlers.NewResourceHandler(svc).Create(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockResourceService(t)
		acc := validation.NewAccumulator()
		acc.Err("Task", "name", validation.Validator{Name: "notNull"}, "Task name is required.")
		svc.EXPECT().Create(mock.Anything, map[string]any{}).Return(nil, domain.NewValidationError(acc))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody)
		rec := httptest.NewRecorder()
		handlers.NewResourceHandler(svc).Create(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
		body := decodeJSON[errorBody](t, rec)
		if body.Type != dto.TypeValidationError {
			t.Errorf("type = %q, want %q", body.Type, dto.TypeValidationError)
		}
	})
}

// --- Get ---

func TestResourceHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", err: domain.NewClientError(domain.ErrNotFound, "Task not found."), wantStatus: http.StatusNotFound},
		{name: "forbidden", err: domain.NewClientError(domain.ErrForbidden, "no"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockResourceService(t)
			if tt.err != nil {
				svc.EXPECT().Get(mock.Anything, "t1").Return(nil, tt.err)
			} else {
				svc.EXPECT().Get(mock.Anything, "t1").Return(validTask(), nil)
			}

			req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", nil), map[string]string{"id": "t1"})
			rec := httptest.NewRecorder()
			handlers.NewResourceHandler(svc).Get(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Update ---

func TestResourceHandler_Update(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResourceService(t)
	updated := validTask()
	updated["name"] = "Renamed"
	svc.EXPECT().Update(mock.Anything, "t1", map[string]any{"name": "Renamed"}).Return(updated, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/t1", jsonBody(t, map[string]any{"name": "Renamed"}))
	req = withChiParams(req, map[string]string{"id": "t1"})
	rec := httptest.NewRecorder()
	handlers.NewResourceHandler(svc).Update(rec, req)

	requireStatus(t, rec, http.StatusOK)
	got := decodeJSON[map[string]any](t, rec)
	if got["name"] != "Renamed" {
		t.Errorf("name = %v, want %q", got["name"], "Renamed")
	}
}

// --- Delete ---

func TestResourceHandler_Delete(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockResourceService(t)
	svc.EXPECT().Delete(mock.Anything, "p1").Return(nil)

	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/places/p1", nil), map[string]string{"id": "p1"})
	rec := httptest.NewRecorder()
	handlers.NewResourceHandler(svc).Delete(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

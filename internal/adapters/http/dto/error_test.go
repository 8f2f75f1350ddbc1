package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantError  string
	}{
		{
			name:       "unauthorized maps to 401",
			err:        domain.NewClientError(domain.ErrUnauthorized, "No authorization token provided."),
			wantStatus: http.StatusUnauthorized,
			wantType:   dto.TypeClientError,
			wantError:  "No authorization token provided.",
		},
		{
			name:       "forbidden maps to 403",
			err:        domain.NewClientError(domain.ErrForbidden, "nope"),
			wantStatus: http.StatusForbidden,
			wantType:   dto.TypeClientError,
			wantError:  "nope",
		},
		{
			name:       "not found maps to 404",
			err:        domain.NewClientError(domain.ErrNotFound, "Task not found."),
			wantStatus: http.StatusNotFound,
			wantType:   dto.TypeClientError,
			wantError:  "Task not found.",
		},
		{
			name:       "conflict maps to 409",
			err:        domain.NewClientError(domain.ErrConflict, "taken"),
			wantStatus: http.StatusConflict,
			wantType:   dto.TypeClientError,
			wantError:  "taken",
		},
		{
			name:       "unprocessable maps to 422",
			err:        domain.NewClientError(domain.ErrUnprocessable, "rejected"),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   dto.TypeClientError,
			wantError:  "rejected",
		},
		{
			name:       "wrapped client error keeps its status",
			err:        fmt.Errorf("handler: %w", domain.NewClientError(domain.ErrNotFound, "gone")),
			wantStatus: http.StatusNotFound,
			wantType:   dto.TypeClientError,
			wantError:  "gone",
		},
		{
			name:       "validation maps to 400",
			err:        &domain.ValidationError{},
			wantStatus: http.StatusBadRequest,
			wantType:   dto.TypeValidationError,
			wantError:  domain.InvalidFieldsMessage,
		},
		{
			name:       "bare sentinel is a server error",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusInternalServerError,
			wantType:   dto.TypeServerError,
			wantError:  dto.ServerErrorMessage,
		},
		{
			name:       "unavailable client error is a server error",
			err:        domain.NewClientError(domain.ErrUnavailable, "upstream down"),
			wantStatus: http.StatusInternalServerError,
			wantType:   dto.TypeServerError,
			wantError:  dto.ServerErrorMessage,
		},
		{
			name:       "unknown error is a server error",
			err:        errors.New("open /data/tasks.json: permission denied"),
			wantStatus: http.StatusInternalServerError,
			wantType:   dto.TypeServerError,
			wantError:  dto.ServerErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, resp := dto.NewErrorResponse(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if resp.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", resp.Type, tt.wantType)
			}
			if resp.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestWriteErrorResponse_ClientErrorBody(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil)

	dto.WriteErrorResponse(w, r, domain.NewClientError(domain.ErrNotFound, "Task not found."))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok || len(data) != 0 {
		t.Errorf("data = %#v, want empty object", body["data"])
	}
}

func TestWriteErrorResponse_ServerErrorHidesDetail(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

	dto.WriteErrorResponse(w, r, errors.New("writing tasks: disk full"))

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != dto.ServerErrorMessage {
		t.Errorf("error = %v, want %q", body["error"], dto.ServerErrorMessage)
	}
	if _, ok := body["data"]; ok {
		t.Error("server error body has data, want none")
	}
}

func TestWriteErrorResponse_ValidationDataIsOrderedList(t *testing.T) {
	t.Parallel()

	acc := validation.NewAccumulator()
	acc.Err("Task", "name", validation.Validator{Name: "notNull"}, "Task name is required.")
	acc.Err("Task", "timeEnd", validation.Validator{Name: "time"}, "Task timeEnd is not a valid time.")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
	dto.WriteErrorResponse(w, r, domain.NewValidationError(acc))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Type string                  `json:"type"`
		Data []validation.FieldError `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Type != dto.TypeValidationError {
		t.Errorf("type = %q, want %q", body.Type, dto.TypeValidationError)
	}
	if len(body.Data) != 2 || body.Data[0].Field != "name" || body.Data[1].Field != "timeEnd" {
		t.Errorf("data = %+v, want name then timeEnd", body.Data)
	}
	if body.Data[0].Validator.Name != "notNull" {
		t.Errorf("validator = %q, want %q", body.Data[0].Validator.Name, "notNull")
	}
}

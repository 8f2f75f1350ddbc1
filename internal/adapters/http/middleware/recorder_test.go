package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		write         func(w http.ResponseWriter)
		wantStatus    int
		wantSize      int64
		wantCommitted bool
		wantFailed    bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "implicit 200 on body write",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"ok":true}`))
			},
			wantStatus:    http.StatusOK,
			wantSize:      11,
			wantCommitted: true,
		},
		{
			name: "no content",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus:    http.StatusNoContent,
			wantCommitted: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:    http.StatusCreated,
			wantCommitted: true,
		},
		{
			name: "server error",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
				_, _ = w.Write([]byte("!"))
			},
			wantStatus:    http.StatusInternalServerError,
			wantSize:      5,
			wantCommitted: true,
			wantFailed:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := record(rec)
			tt.write(sr)

			if sr.status != tt.wantStatus {
				t.Errorf("status = %d, want %d", sr.status, tt.wantStatus)
			}
			if sr.size != tt.wantSize {
				t.Errorf("size = %d, want %d", sr.size, tt.wantSize)
			}
			if sr.committed != tt.wantCommitted {
				t.Errorf("committed = %v, want %v", sr.committed, tt.wantCommitted)
			}
			if sr.failed() != tt.wantFailed {
				t.Errorf("failed() = %v, want %v", sr.failed(), tt.wantFailed)
			}
		})
	}
}

func TestRecord_ReusesExistingRecorder(t *testing.T) {
	t.Parallel()

	outer := record(httptest.NewRecorder())
	if inner := record(outer); inner != outer {
		t.Error("record() wrapped an existing statusRecorder again")
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := record(rec)

	if sr.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
	if err := http.NewResponseController(sr).Flush(); err != nil {
		t.Errorf("Flush through recorder: %v", err)
	}
}

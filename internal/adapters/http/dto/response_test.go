package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskplace-api/internal/adapters/http/dto"
)

func TestNewReadinessResponse(t *testing.T) {
	t.Parallel()

	t.Run("all healthy", func(t *testing.T) {
		t.Parallel()
		resp, ready := dto.NewReadinessResponse(map[string]error{"store": nil, "neutrino": nil})
		if !ready || resp.Status != dto.StatusReady {
			t.Errorf("got (%q, %v), want (%q, true)", resp.Status, ready, dto.StatusReady)
		}
		if resp.Checks["store"] != dto.StatusOK {
			t.Errorf("Checks[store] = %q, want %q", resp.Checks["store"], dto.StatusOK)
		}
	})

	t.Run("one failing", func(t *testing.T) {
		t.Parallel()
		resp, ready := dto.NewReadinessResponse(map[string]error{
			"store":    nil,
			"neutrino": errors.New("circuit breaker open"),
		})
		if ready || resp.Status != dto.StatusNotReady {
			t.Errorf("got (%q, %v), want (%q, false)", resp.Status, ready, dto.StatusNotReady)
		}
		if resp.Checks["neutrino"] != "circuit breaker open" {
			t.Errorf("Checks[neutrino] = %q", resp.Checks["neutrino"])
		}
	})
}

func TestNewLoginRequest_NonStringValuesAreEmpty(t *testing.T) {
	t.Parallel()

	req := dto.NewLoginRequest(map[string]any{"email": 42, "password": "pw"})
	if req.Email != "" || req.Password != "pw" {
		t.Errorf("NewLoginRequest() = %+v, want empty email and pw", req)
	}
}

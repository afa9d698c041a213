package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid input", fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput), http.StatusBadRequest, `{"error":"invalid input: invalid email format"}`},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"not found", fmt.Errorf("registration SR_009: %w", domain.ErrNotFound), http.StatusNotFound, `{"error":"not found"}`},
		{"conflict", domain.ErrConflict, http.StatusConflict, `{"error":"influencer already registered for summit"}`},
		{"id taken", fmt.Errorf("register SR_004: %w", domain.ErrIDTaken), http.StatusConflict, `{"error":"id already taken, retry the request"}`},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized"), http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Body.String(); got != tt.wantBody+"\n" {
				t.Fatalf("unexpected body: %q", got)
			}
		})
	}
}

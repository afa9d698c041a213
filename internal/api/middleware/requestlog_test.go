package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// observed reports whether the request histogram has a series for route and code.
func observed(t *testing.T, route, code string) bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "summit_http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] == route && labels["code"] == code && m.GetHistogram().GetSampleCount() > 0 {
				return true
			}
		}
	}
	return false
}

func TestMetrics_RendersErrorAndObserves(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/badges/:badgeId", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/badges/BD_404", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !observed(t, "/badges/:badgeId", "404") {
		t.Fatalf("expected a histogram sample for the matched route")
	}
}

func TestRequestLogger_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
	}
	if line["method"] != "GET" || line["uri"] != "/health" || line["status"] != float64(200) {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestRequestLogger_ServerErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(Metrics())
	e.Use(RequestLogger(log))
	e.GET("/admin/badges", func(c echo.Context) error {
		return errors.New("store down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/badges", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}
	var line map[string]any
	if err := json.Unmarshal(lines[0], &line); err != nil {
		t.Fatalf("invalid log line %q: %v", lines[0], err)
	}
	if line["status"] != float64(500) || line["error"] != "store down" {
		t.Fatalf("expected status 500 with the cause, got %v", line)
	}
	if !observed(t, "/admin/badges", "500") {
		t.Fatalf("expected a histogram sample with code 500")
	}
}

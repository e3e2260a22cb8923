package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")

	if err := NewHealthHandler(nil).Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name     string
		deps     map[string]Pinger
		wantCode int
		wantStat string
	}{
		{
			name:     "all up",
			deps:     map[string]Pinger{"mongodb": stubPinger{}, "redis": stubPinger{}},
			wantCode: http.StatusOK,
			wantStat: "ok",
		},
		{
			name:     "redis down",
			deps:     map[string]Pinger{"mongodb": stubPinger{}, "redis": stubPinger{err: errors.New("dial tcp: refused")}},
			wantCode: http.StatusServiceUnavailable,
			wantStat: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, "/health/ready", "")

			if err := NewHealthHandler(tt.deps).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tt.wantStat || len(resp.Dependencies) != len(tt.deps) {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestDashboardHandler_Stats(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/api/v1/dashboard", "")

	h := NewDashboardHandler(&stubDashboard{stats: domain.DashboardStats{ProductCount: 4, UserCount: 2}})
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if stats.ProductCount != 4 || stats.UserCount != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestWelcome(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/api/v1", "")

	if err := Welcome(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "Seja bem-vindo!" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

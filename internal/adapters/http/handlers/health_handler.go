package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. The service is ready only when both
// the issuing API and the ephemeral key backend are reachable; any failing
// check yields 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]dto.CheckResult, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		if err == nil {
			resp.Checks[name] = dto.CheckResult{Status: statusOK}
			continue
		}
		resp.Checks[name] = dto.CheckResult{Status: statusFailing, Error: err.Error()}
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}

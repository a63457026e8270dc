// ABOUTME: Health handler reporting liveness and enabled features
// ABOUTME: Used by load balancers and for quick configuration checks

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"splitview-api/pkg/featureflags"
)

// HealthHandler reports service health
type HealthHandler struct {
	flags   featureflags.Manager
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(flags featureflags.Manager, version string) *HealthHandler {
	return &HealthHandler{flags: flags, version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body struct {
		Status   string          `json:"status"`
		Version  string          `json:"version"`
		Features map[string]bool `json:"features"`
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	out.Body.Version = h.version
	out.Body.Features = make(map[string]bool)
	for flag, enabled := range h.flags.GetAllFlags() {
		out.Body.Features[string(flag)] = enabled
	}
	return out, nil
}

// ABOUTME: Viewer handler for the Huma API
// ABOUTME: Resolves a URL into the presentation the split-screen viewer should use

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"splitview-api/api/dto/mappers"
	"splitview-api/api/dto/responses"
	"splitview-api/core/interfaces"
)

// ViewerHandler handles URL resolution requests
type ViewerHandler struct {
	resolver interfaces.ViewerResolver
}

// NewViewerHandler creates a new viewer handler
func NewViewerHandler(resolver interfaces.ViewerResolver) *ViewerHandler {
	return &ViewerHandler{resolver: resolver}
}

// RegisterRoutes registers the resolution route
func (h *ViewerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveURL",
		Method:      http.MethodGet,
		Path:        "/resolve",
		Summary:     "Decide how to show a URL",
		Description: "Unwraps redirect links, classifies known hosts and probes the rest. Blocked pages fall back to reader mode.",
		Tags:        []string{"Viewer"},
	}, h.Resolve)
}

// ResolveInput defines the input for the Resolve operation
type ResolveInput struct {
	URL  string `query:"url" doc:"URL to open"`
	Type string `query:"type" doc:"Optional hint: pdf, image, reader or new-tab"`
}

// ResolveOutput defines the output for the Resolve operation
type ResolveOutput struct {
	Body responses.ViewerDecisionResponse
}

// Resolve handles GET /resolve
func (h *ViewerHandler) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, huma.Error400BadRequest(msgMissingURL)
	}

	decision, err := h.resolver.Resolve(ctx, target, strings.TrimSpace(input.Type))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ResolveOutput{Body: mappers.ToViewerDecisionResponse(decision)}, nil
}

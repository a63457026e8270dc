// ABOUTME: Metadata handler for link preview cards
// ABOUTME: Returns title, description and image for one URL or a batch

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"splitview-api/api/dto/mappers"
	"splitview-api/api/dto/requests"
	"splitview-api/api/dto/responses"
	"splitview-api/core/interfaces"
)

// MetadataHandler handles link preview requests
type MetadataHandler struct {
	metadata interfaces.MetadataService
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadata interfaces.MetadataService) *MetadataHandler {
	return &MetadataHandler{metadata: metadata}
}

// RegisterRoutes registers metadata routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMetadata",
		Method:      http.MethodGet,
		Path:        "/metadata",
		Summary:     "Build a link preview",
		Description: "YouTube links use oEmbed; other pages are scraped for title, description and og:image. Failures return empty fields.",
		Tags:        []string{"Metadata"},
	}, h.GetMetadata)

	huma.Register(api, huma.Operation{
		OperationID: "getMetadataBatch",
		Method:      http.MethodPost,
		Path:        "/metadata",
		Summary:     "Build link previews for several URLs",
		Tags:        []string{"Metadata"},
	}, h.GetMetadataBatch)
}

// MetadataInput defines the input for the GetMetadata operation
type MetadataInput struct {
	URL string `query:"url" doc:"URL to preview"`
}

// MetadataOutput defines the output for the GetMetadata operation
type MetadataOutput struct {
	Body responses.LinkPreviewResponse
}

// GetMetadata handles GET /metadata
func (h *MetadataHandler) GetMetadata(ctx context.Context, input *MetadataInput) (*MetadataOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, huma.Error400BadRequest("URL is required")
	}

	preview := h.metadata.Preview(ctx, target)

	return &MetadataOutput{Body: mappers.ToLinkPreviewResponse(preview)}, nil
}

// MetadataBatchInput defines the input for the GetMetadataBatch operation
type MetadataBatchInput struct {
	Body requests.BatchMetadataRequest
}

// MetadataBatchOutput maps each requested URL to its preview
type MetadataBatchOutput struct {
	Body struct {
		Previews map[string]responses.LinkPreviewResponse `json:"previews"`
	}
}

// GetMetadataBatch handles POST /metadata
func (h *MetadataHandler) GetMetadataBatch(ctx context.Context, input *MetadataBatchInput) (*MetadataBatchOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	previews := h.metadata.PreviewBatch(ctx, input.Body.URLs)

	output := &MetadataBatchOutput{}
	output.Body.Previews = make(map[string]responses.LinkPreviewResponse, len(previews))
	for u, p := range previews {
		output.Body.Previews[u] = mappers.ToLinkPreviewResponse(p)
	}
	return output, nil
}

// ABOUTME: Embeddability handler for the Huma API
// ABOUTME: Reports whether remote pages may be framed, one URL or a batch at a time

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"

	"splitview-api/api/dto/mappers"
	"splitview-api/api/dto/requests"
	"splitview-api/api/dto/responses"
	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
)

const batchProbeConcurrency = 8

// EmbedHandler handles embeddability checks
type EmbedHandler struct {
	prober interfaces.EmbedProber
}

// NewEmbedHandler creates a new embeddability handler
func NewEmbedHandler(prober interfaces.EmbedProber) *EmbedHandler {
	return &EmbedHandler{prober: prober}
}

// RegisterRoutes registers all embeddability routes
func (h *EmbedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "checkEmbeddability",
		Method:      http.MethodGet,
		Path:        "/check-embeddability",
		Summary:     "Check whether a page can be framed",
		Description: "Inspects X-Frame-Options and CSP frame-ancestors. A failed probe answers \"unknown\", which viewers treat as embeddable.",
		Tags:        []string{"Embed"},
	}, h.Check)

	huma.Register(api, huma.Operation{
		OperationID: "checkEmbeddabilityBatch",
		Method:      http.MethodPost,
		Path:        "/check-embeddability/batch",
		Summary:     "Check several pages at once",
		Description: "Probes each URL independently; results keep request order",
		Tags:        []string{"Embed"},
	}, h.CheckBatch)
}

// CheckInput defines the input for the Check operation
type CheckInput struct {
	URL string `query:"url" doc:"Absolute URL or internal path to check"`
}

// CheckOutput defines the output for the Check operation
type CheckOutput struct {
	Body responses.EmbedResponse
}

// Check handles GET /check-embeddability
func (h *EmbedHandler) Check(ctx context.Context, input *CheckInput) (*CheckOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, huma.Error400BadRequest(msgMissingURL)
	}

	decision := h.prober.Probe(ctx, target)

	return &CheckOutput{Body: mappers.ToEmbedResponse(decision)}, nil
}

// CheckBatchInput defines the input for the CheckBatch operation
type CheckBatchInput struct {
	Body requests.BatchEmbedRequest
}

// CheckBatchOutput defines the output for the CheckBatch operation
type CheckBatchOutput struct {
	Body responses.BatchEmbedResponse
}

// CheckBatch handles POST /check-embeddability/batch
func (h *EmbedHandler) CheckBatch(ctx context.Context, input *CheckBatchInput) (*CheckBatchOutput, error) {
	urls := input.Body.URLs
	if len(urls) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			return nil, huma.Error400BadRequest(msgMissingURL)
		}
	}

	decisions := make([]domain.EmbedDecision, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchProbeConcurrency)
	for i, u := range urls {
		i, target := i, strings.TrimSpace(u)
		g.Go(func() error {
			decisions[i] = h.prober.Probe(gctx, target)
			return nil
		})
	}
	_ = g.Wait()

	return &CheckBatchOutput{Body: mappers.ToBatchEmbedResponse(urls, decisions)}, nil
}

// ABOUTME: Reader handler for the Huma API
// ABOUTME: Extracts a clean article from a web page for reader mode

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

// ReaderHandler handles reader view extraction requests
type ReaderHandler struct {
	extractor interfaces.ArticleExtractor
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(extractor interfaces.ArticleExtractor) *ReaderHandler {
	return &ReaderHandler{extractor: extractor}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractArticle",
		Method:      http.MethodGet,
		Path:        "/extract-article",
		Summary:     "Extract reader view from a URL",
		Description: "Fetches the page and returns sanitized article HTML and text. 422 means no article could be found.",
		Tags:        []string{"Reader"},
	}, h.ExtractArticle)
}

// ExtractArticleInput defines the input for the ExtractArticle operation
type ExtractArticleInput struct {
	URL string `query:"url" doc:"Absolute http(s) URL of the page"`
}

// ExtractArticleOutput defines the output for the ExtractArticle operation
type ExtractArticleOutput struct {
	Body responses.ArticleResponse
}

// ExtractArticle handles GET /extract-article
func (h *ReaderHandler) ExtractArticle(ctx context.Context, input *ExtractArticleInput) (*ExtractArticleOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, huma.Error400BadRequest(msgMissingURL)
	}

	article, err := h.extractor.Extract(ctx, target)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractArticleOutput{Body: *mappers.ToArticleResponse(article)}, nil
}

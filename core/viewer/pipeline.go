// ABOUTME: Split-view resolution pipeline deciding how one URL is presented
// ABOUTME: Unwraps and classifies first and probes embeddability only for unclassified pages

package viewer

import (
	"context"
	"net/url"
	"strings"

	"splitview-api/core/domain"
	coreerrors "splitview-api/core/errors"
	"splitview-api/core/interfaces"
)

// Pipeline runs the strict per-URL order Unwrap, Classify, Probe
type Pipeline struct {
	resolver interfaces.Resolver
	prober   interfaces.EmbedProber
	logger   interfaces.Logger
}

// NewPipeline creates a pipeline
func NewPipeline(resolver interfaces.Resolver, prober interfaces.EmbedProber, logger interfaces.Logger) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		prober:   prober,
		logger:   logger,
	}
}

// Resolve decides the presentation of rawURL. The hint comes from the caller:
// "pdf" and "image" mark uploaded files shown natively, "reader" and
// "new-tab" force those presentations. Anything else is ignored.
func (p *Pipeline) Resolve(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return domain.ViewerDecision{}, &coreerrors.ValidationError{Field: "url", Message: "URL is required"}
	}

	presentation := domain.ParsePresentation(hint)
	switch presentation {
	case domain.PresentationPDF, domain.PresentationImage:
		return nativeDecision(rawURL, presentation), nil
	case domain.PresentationText:
		return domain.ViewerDecision{}, &coreerrors.ValidationError{Field: "type", Message: "text entries carry content, not a URL"}
	}

	target := p.resolver.Resolve(rawURL)
	if !isNavigable(target.UnwrappedURL) {
		return domain.ViewerDecision{}, &coreerrors.ValidationError{Field: "url", Message: "URL must be an absolute http or https URL"}
	}

	decision := domain.ViewerDecision{
		Target:       target,
		Presentation: domain.PresentationIframe,
		URL:          target.DisplayURL(),
	}

	switch presentation {
	case domain.PresentationNewTab:
		decision.Presentation = domain.PresentationNewTab
		decision.URL = target.UnwrappedURL
		return decision, nil
	case domain.PresentationReader:
		decision.Presentation = domain.PresentationReader
		decision.URL = target.UnwrappedURL
		return decision, nil
	}

	if target.IsClassified() {
		return decision, nil
	}

	embed := p.prober.Probe(ctx, target.UnwrappedURL)
	decision.Embed = &embed
	if !embed.ShouldFrame() {
		decision.Presentation = domain.PresentationReader
		decision.URL = target.UnwrappedURL
	}

	p.logger.Debug("Resolved viewer target", map[string]interface{}{
		"url":          target.UnwrappedURL,
		"category":     string(target.Category),
		"canEmbed":     string(embed.CanEmbed),
		"presentation": string(decision.Presentation),
	})

	return decision, nil
}

// HistoryEntry converts a decision into the entry the viewer records
func HistoryEntry(d domain.ViewerDecision) domain.HistoryEntry {
	switch d.Presentation {
	case domain.PresentationReader:
		return domain.HistoryEntry{URL: d.URL, Type: domain.PresentationIframe, ReaderMode: true}
	case domain.PresentationPDF, domain.PresentationImage, domain.PresentationNewTab:
		return domain.HistoryEntry{URL: d.URL, Type: d.Presentation}
	default:
		return domain.HistoryEntry{URL: d.URL, Type: domain.PresentationIframe}
	}
}

func nativeDecision(rawURL string, presentation domain.Presentation) domain.ViewerDecision {
	category := domain.CategoryImage
	if presentation == domain.PresentationPDF {
		category = domain.CategoryDocument
	}
	return domain.ViewerDecision{
		Target: domain.ResolvedTarget{
			RawURL:       rawURL,
			UnwrappedURL: rawURL,
			Category:     category,
			IsPDF:        presentation == domain.PresentationPDF,
		},
		Presentation: presentation,
		URL:          rawURL,
	}
}

// isNavigable accepts absolute http(s) URLs and path-relative app URLs
func isNavigable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//")
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"splitview-api/api/dto/responses"
	"splitview-api/core/domain"
)

// ToEmbedResponse converts an embed decision, rendering Unknown as the string "unknown"
func ToEmbedResponse(d domain.EmbedDecision) responses.EmbedResponse {
	var canEmbed interface{}
	switch d.CanEmbed {
	case domain.EmbedAllowed:
		canEmbed = true
	case domain.EmbedBlocked:
		canEmbed = false
	default:
		canEmbed = string(domain.EmbedUnknown)
	}

	return responses.EmbedResponse{
		CanEmbed: canEmbed,
		Reason:   d.Reason,
	}
}

// ToBatchEmbedResponse keeps the order of urls
func ToBatchEmbedResponse(urls []string, decisions []domain.EmbedDecision) responses.BatchEmbedResponse {
	out := responses.BatchEmbedResponse{
		Results: make([]responses.BatchEmbedItem, 0, len(decisions)),
	}
	for i, d := range decisions {
		out.Results = append(out.Results, responses.BatchEmbedItem{
			URL:           urls[i],
			EmbedResponse: ToEmbedResponse(d),
		})
	}
	return out
}

// ToArticleResponse converts an extracted article
func ToArticleResponse(a *domain.Article) *responses.ArticleResponse {
	if a == nil {
		return nil
	}

	return &responses.ArticleResponse{
		Title:       a.Title,
		Byline:      a.Byline,
		Content:     a.Content,
		TextContent: a.TextContent,
		Markdown:    a.Markdown,
		Excerpt:     a.Excerpt,
		SiteName:    a.SiteName,
		SourceURL:   a.SourceURL,
		Length:      a.Length,
		Engine:      a.Engine,
	}
}

// ToViewerDecisionResponse converts a pipeline decision
func ToViewerDecisionResponse(d domain.ViewerDecision) responses.ViewerDecisionResponse {
	out := responses.ViewerDecisionResponse{
		Presentation: string(d.Presentation),
		URL:          d.URL,
		RawURL:       d.Target.RawURL,
		UnwrappedURL: d.Target.UnwrappedURL,
		Category:     string(d.Target.Category),
	}
	if d.Embed != nil {
		embed := ToEmbedResponse(*d.Embed)
		out.Embed = &embed
	}
	return out
}

// ToHistoryEntryResponse converts one history entry
func ToHistoryEntryResponse(e domain.HistoryEntry) responses.HistoryEntryResponse {
	return responses.HistoryEntryResponse{
		URL:         e.URL,
		Type:        string(e.Type),
		TextContent: e.TextContent,
		TextTitle:   e.TextTitle,
		ReaderMode:  e.ReaderMode,
	}
}

// ToSessionResponse converts a session and its history
func ToSessionResponse(s *domain.Session) *responses.SessionResponse {
	if s == nil {
		return nil
	}

	// the navigation checks repair a cursor decoded from storage, so they run first
	canGoBack := s.History.CanGoBack()
	canGoForward := s.History.CanGoForward()

	out := &responses.SessionResponse{
		ID:           s.ID,
		Entries:      make([]responses.HistoryEntryResponse, 0, len(s.History.Entries)),
		Cursor:       s.History.Cursor,
		CanGoBack:    canGoBack,
		CanGoForward: canGoForward,
		CreatedAt:    s.CreatedAt,
		ExpiresAt:    s.ExpiresAt,
	}
	for _, e := range s.History.Entries {
		out.Entries = append(out.Entries, ToHistoryEntryResponse(e))
	}
	if current, ok := s.History.Current(); ok {
		entry := ToHistoryEntryResponse(current)
		out.Current = &entry
	}

	return out
}

// ToLinkPreviewResponse converts a link preview
func ToLinkPreviewResponse(p domain.LinkPreview) responses.LinkPreviewResponse {
	return responses.LinkPreviewResponse{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

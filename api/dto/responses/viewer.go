// ABOUTME: Response DTOs for embeddability, article, resolution and session endpoints
// ABOUTME: Keeps the wire shapes separate from the domain types

package responses

import "time"

// EmbedResponse is the embeddability verdict for one URL.
// CanEmbed is true, false or the string "unknown".
type EmbedResponse struct {
	CanEmbed interface{} `json:"canEmbed" doc:"true, false or \"unknown\" when the probe failed"`
	Reason   string      `json:"reason"`
}

// BatchEmbedItem is one entry of a batch embeddability response
type BatchEmbedItem struct {
	URL string `json:"url"`
	EmbedResponse
}

// BatchEmbedResponse holds results in request order
type BatchEmbedResponse struct {
	Results []BatchEmbedItem `json:"results"`
}

// ArticleResponse is the reader view of one page
type ArticleResponse struct {
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Content     string `json:"content"`
	TextContent string `json:"textContent"`
	Markdown    string `json:"markdown,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
	SourceURL   string `json:"sourceUrl"`
	Length      int    `json:"length"`
	Engine      string `json:"engine"`
}

// ViewerDecisionResponse says how the viewer should show a URL
type ViewerDecisionResponse struct {
	Presentation string         `json:"presentation" doc:"iframe, reader, pdf, image or new-tab"`
	URL          string         `json:"url" doc:"URL to load"`
	RawURL       string         `json:"rawUrl"`
	UnwrappedURL string         `json:"unwrappedUrl"`
	Category     string         `json:"category"`
	Embed        *EmbedResponse `json:"embed,omitempty"`
}

// HistoryEntryResponse is one page of a session history
type HistoryEntryResponse struct {
	URL         string `json:"url"`
	Type        string `json:"type"`
	TextContent string `json:"textContent,omitempty"`
	TextTitle   string `json:"textTitle,omitempty"`
	ReaderMode  bool   `json:"readerMode"`
}

// SessionResponse is the state of a viewer session
type SessionResponse struct {
	ID           string                 `json:"id"`
	Entries      []HistoryEntryResponse `json:"entries"`
	Cursor       int                    `json:"cursor"`
	Current      *HistoryEntryResponse  `json:"current,omitempty"`
	CanGoBack    bool                   `json:"canGoBack"`
	CanGoForward bool                   `json:"canGoForward"`
	CreatedAt    time.Time              `json:"createdAt"`
	ExpiresAt    *time.Time             `json:"expiresAt,omitempty"`
}

// OpenResponse is returned after opening a URL in a session
type OpenResponse struct {
	Session  SessionResponse        `json:"session"`
	Decision ViewerDecisionResponse `json:"decision"`
}

// LinkPreviewResponse is the card metadata of one page
type LinkPreviewResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ABOUTME: Domain models and types for reader view functionality
// ABOUTME: Defines the structure for extracted article content

package domain

// Article represents extracted article content from a webpage.
// It is either complete or not produced at all.
type Article struct {
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Content     string `json:"content"`            // sanitized HTML
	TextContent string `json:"textContent"`        // plain text
	Markdown    string `json:"markdown,omitempty"` // Markdown rendering of Content
	Excerpt     string `json:"excerpt,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
	SourceURL   string `json:"sourceUrl"`
	Length      int    `json:"length"`
	Engine      string `json:"engine"`
}

// LinkPreview holds the metadata shown on a resource card
type LinkPreview struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ABOUTME: Domain models for URL resolution in the split-view viewer
// ABOUTME: Defines target categories, presentation strategies and viewer decisions

package domain

// Category is the classification of a URL that needs no network I/O
type Category string

const (
	// CategoryVideo covers known video hosts rewritten to an embed URL
	CategoryVideo Category = "video"

	// CategoryDocument covers document hosts and direct PDF links
	CategoryDocument Category = "document"

	// CategorySandbox covers code sandbox hosts
	CategorySandbox Category = "sandbox"

	// CategoryImage covers direct links to image files
	CategoryImage Category = "image"

	// CategoryGeneric means classification missed and the URL must be probed
	CategoryGeneric Category = "generic"
)

// ResolvedTarget is the result of unwrapping and classifying a raw URL
type ResolvedTarget struct {
	RawURL       string   `json:"rawUrl"`
	UnwrappedURL string   `json:"unwrappedUrl"`
	Category     Category `json:"category"`
	EmbedURL     string   `json:"embedUrl,omitempty"`
	IsPDF        bool     `json:"isPdf,omitempty"`
}

// IsClassified reports whether the classifier produced an authoritative category
func (t ResolvedTarget) IsClassified() bool {
	return t.Category != "" && t.Category != CategoryGeneric
}

// DisplayURL returns the URL the viewer should load for this target
func (t ResolvedTarget) DisplayURL() string {
	if t.EmbedURL != "" {
		return t.EmbedURL
	}
	if t.UnwrappedURL != "" {
		return t.UnwrappedURL
	}
	return t.RawURL
}

// Presentation is how the viewer shows a target
type Presentation string

const (
	PresentationIframe Presentation = "iframe"
	PresentationReader Presentation = "reader"
	PresentationPDF    Presentation = "pdf"
	PresentationImage  Presentation = "image"
	PresentationText   Presentation = "text"
	PresentationNewTab Presentation = "new-tab"
)

// ParsePresentation maps a caller supplied hint to a Presentation.
// Unknown or empty hints return the empty Presentation.
func ParsePresentation(hint string) Presentation {
	switch Presentation(hint) {
	case PresentationIframe, PresentationReader, PresentationPDF,
		PresentationImage, PresentationText, PresentationNewTab:
		return Presentation(hint)
	}
	return ""
}

// ViewerDecision is the final answer of the resolution pipeline for one URL
type ViewerDecision struct {
	Target       ResolvedTarget `json:"target"`
	Presentation Presentation   `json:"presentation"`
	URL          string         `json:"url"`
	Embed        *EmbedDecision `json:"embed,omitempty"`
}

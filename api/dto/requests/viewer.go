// ABOUTME: Request DTOs for embeddability, resolution and session endpoints
// ABOUTME: Huma validates the bodies against these struct tags

package requests

// BatchEmbedRequest is the body of the batch embeddability check
type BatchEmbedRequest struct {
	// URLs are probed independently; results keep this order
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"URLs to check"`
}

// BatchMetadataRequest is the body of the batch link preview endpoint
type BatchMetadataRequest struct {
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"URLs to build previews for"`
}

// OpenRequest opens a URL in a viewer session
type OpenRequest struct {
	URL string `json:"url" minLength:"1" doc:"Absolute http(s) URL or internal path"`

	// Type is an optional presentation hint: pdf, image, reader or new-tab
	Type string `json:"type,omitempty" doc:"Presentation hint"`
}

// OpenTextRequest shows inline text content in a viewer session
type OpenTextRequest struct {
	Content string `json:"content" minLength:"1" doc:"Text to display"`
	Title   string `json:"title,omitempty" doc:"Title shown above the text"`
}

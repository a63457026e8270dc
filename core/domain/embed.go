// ABOUTME: Domain model for embeddability probe results
// ABOUTME: Tri-state decision on whether a remote page may be framed

package domain

// EmbedStatus is the tri-state outcome of an embeddability probe
type EmbedStatus string

const (
	EmbedAllowed EmbedStatus = "allowed"
	EmbedBlocked EmbedStatus = "blocked"
	// EmbedUnknown means the probe itself failed. Callers treat it as allowed.
	EmbedUnknown EmbedStatus = "unknown"
)

// EmbedDecision is produced by the prober for a single URL
type EmbedDecision struct {
	URL      string      `json:"url"`
	CanEmbed EmbedStatus `json:"canEmbed"`
	Reason   string      `json:"reason"`
}

// ShouldFrame reports whether the viewer may attempt an iframe render.
// Unknown is optimistic.
func (d EmbedDecision) ShouldFrame() bool {
	return d.CanEmbed != EmbedBlocked
}

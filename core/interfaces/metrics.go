// ABOUTME: Metrics interface for recording pipeline outcomes
// ABOUTME: Lets core services count results without importing a metrics backend

package interfaces

import "time"

// Metrics records outcomes of the viewer pipeline
type Metrics interface {
	// ProbeResult counts one embeddability verdict
	ProbeResult(status string)

	// ExtractResult counts one extraction attempt by engine and outcome
	ExtractResult(engine, outcome string, elapsed time.Duration)

	// FallbackUsed counts a successful fallback extraction
	FallbackUsed(name string)
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) ProbeResult(string) {}

func (NoopMetrics) ExtractResult(string, string, time.Duration) {}

func (NoopMetrics) FallbackUsed(string) {}

// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache backs viewer session storage
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records pipeline outcomes
	Metrics Metrics
}

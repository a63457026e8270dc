// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failure to retrieve or parse a remote page.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	if e.Err == nil {
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NoArticleReason distinguishes why no article could be produced
type NoArticleReason string

const (
	// ReasonNoArticleFound means every engine and fallback came up short
	ReasonNoArticleFound NoArticleReason = "no-article-found"

	// ReasonClientRendered means the page ships an empty app shell
	ReasonClientRendered NoArticleReason = "client-rendered"
)

// NoArticleError is returned when a page was fetched but holds no readable article
type NoArticleError struct {
	URL    string
	Reason NoArticleReason
}

// Error implements the error interface
func (e *NoArticleError) Error() string {
	if e.Reason == ReasonClientRendered {
		return fmt.Sprintf("no article in %s: page is rendered client-side", e.URL)
	}
	return fmt.Sprintf("no article in %s", e.URL)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsNoArticle checks if an error is a NoArticleError of any reason
func IsNoArticle(err error) bool {
	var noArticleErr *NoArticleError
	return errors.As(err, &noArticleErr)
}

// IsClientRendered checks if an error is a NoArticleError caused by client-side rendering
func IsClientRendered(err error) bool {
	var noArticleErr *NoArticleError
	return errors.As(err, &noArticleErr) && noArticleErr.Reason == ReasonClientRendered
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

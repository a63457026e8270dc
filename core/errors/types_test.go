package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "session",
		ID:       "123",
	}

	expected := "session not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid URL format",
	}

	expected := "validation error on field 'url': invalid URL format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "status code",
			err:      &FetchError{URL: "https://example.com", StatusCode: 404},
			expected: "fetch https://example.com: status 404",
		},
		{
			name:     "transport error",
			err:      &FetchError{URL: "https://example.com", Err: errors.New("connection refused")},
			expected: "fetch https://example.com: connection refused",
		},
		{
			name:     "no detail",
			err:      &FetchError{URL: "https://example.com"},
			expected: "fetch https://example.com failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("FetchError.Error() = %v, want %v", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &FetchError{URL: "https://example.com", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}

func TestIsNotFound_True(t *testing.T) {
	err := &NotFoundError{
		Resource: "session",
		ID:       "abc",
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestIsNotFound_False(t *testing.T) {
	err := errors.New("some other error")

	if IsNotFound(err) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "session",
		ID:       "123",
	}
	wrapped := fmt.Errorf("failed to load session: %w", notFound)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "url", Message: "invalid URL"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsFetch(t *testing.T) {
	wrapped := fmt.Errorf("extract: %w", &FetchError{URL: "https://example.com", StatusCode: 500})

	if !IsFetch(wrapped) {
		t.Error("IsFetch should return true for wrapped FetchError")
	}
	if IsFetch(&NoArticleError{URL: "https://example.com"}) {
		t.Error("IsFetch should return false for NoArticleError")
	}
}

func TestNoArticleError_Reasons(t *testing.T) {
	csr := &NoArticleError{URL: "https://app.example", Reason: ReasonClientRendered}
	plain := &NoArticleError{URL: "https://blog.example", Reason: ReasonNoArticleFound}

	if !IsNoArticle(csr) || !IsNoArticle(plain) {
		t.Error("IsNoArticle should match both reasons")
	}
	if !IsClientRendered(csr) {
		t.Error("IsClientRendered should match client-rendered reason")
	}
	if IsClientRendered(plain) {
		t.Error("IsClientRendered should not match no-article-found reason")
	}
	if IsClientRendered(errors.New("other")) {
		t.Error("IsClientRendered should return false for unrelated errors")
	}

	expected := "no article in https://app.example: page is rendered client-side"
	if csr.Error() != expected {
		t.Errorf("NoArticleError.Error() = %v, want %v", csr.Error(), expected)
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "session", ID: "abc"}
	wrappedErr := WrapError(originalErr, "failed to load session")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to load session: session not found: abc"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")

	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}

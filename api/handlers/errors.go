// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"splitview-api/core/errors"
)

const (
	msgMissingURL     = "Missing URL parameter"
	msgClientRendered = "This page renders its content in the browser and has no article to extract"
	msgNoArticle      = "Could not extract article content from this page"
	msgFetchFailed    = "Failed to fetch or parse the article"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())

	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())

	case errors.IsClientRendered(err):
		return huma.Error422UnprocessableEntity(msgClientRendered, err)

	case errors.IsNoArticle(err):
		return huma.Error422UnprocessableEntity(msgNoArticle, err)

	case errors.IsFetch(err):
		// the detail carries the upstream status or transport error
		return huma.Error500InternalServerError(msgFetchFailed, err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// Package api provides the HTTP API layer for the Split View application.
// It uses the Huma framework for OpenAPI documentation, request validation
// and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging and per-IP rate limiting
//
// OpenAPI JSON is served at /openapi.json and the interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 10,
//	})
//
//	handlers.NewEmbedHandler(prober).RegisterRoutes(humaAPI)
//	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "Missing URL parameter"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api

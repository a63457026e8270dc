// ABOUTME: Session handler for the Huma API
// ABOUTME: Exposes the back/forward navigation history of a viewer session

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"splitview-api/api/dto/mappers"
	"splitview-api/api/dto/requests"
	"splitview-api/api/dto/responses"
	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
)

// SessionHandler handles viewer session requests
type SessionHandler struct {
	sessions interfaces.SessionManager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions interfaces.SessionManager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers all session routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	tags := []string{"Sessions"}

	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Create a viewer session",
		DefaultStatus: http.StatusCreated,
		Tags:          tags,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get a viewer session",
		Tags:        tags,
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "openInSession",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/open",
		Summary:     "Open a URL in the viewer",
		Description: "Resolves the URL and appends it to the history, discarding forward entries",
		Tags:        tags,
	}, h.Open)

	huma.Register(api, huma.Operation{
		OperationID: "openTextInSession",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/text",
		Summary:     "Show inline text in the viewer",
		Tags:        tags,
	}, h.OpenText)

	huma.Register(api, huma.Operation{
		OperationID: "sessionBack",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/back",
		Summary:     "Go back one entry",
		Tags:        tags,
	}, h.Back)

	huma.Register(api, huma.Operation{
		OperationID: "sessionForward",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/forward",
		Summary:     "Go forward one entry",
		Tags:        tags,
	}, h.Forward)

	huma.Register(api, huma.Operation{
		OperationID: "sessionReaderMode",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/reader",
		Summary:     "Switch the current entry to reader mode",
		Tags:        tags,
	}, h.ReaderMode)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteSession",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "Close a viewer session",
		DefaultStatus: http.StatusNoContent,
		Tags:          tags,
	}, h.Close)
}

// SessionIDInput identifies a session in the path
type SessionIDInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// SessionOutput returns the session state
type SessionOutput struct {
	Body responses.SessionResponse
}

// OpenInput defines the input for the Open operation
type OpenInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body requests.OpenRequest
}

// OpenOutput returns the session and the decision for the opened URL
type OpenOutput struct {
	Body responses.OpenResponse
}

// OpenTextInput defines the input for the OpenText operation
type OpenTextInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body requests.OpenTextRequest
}

// Create handles POST /sessions
func (h *SessionHandler) Create(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	session, err := h.sessions.Create(ctx)
	return sessionOutput(session, err)
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	session, err := h.sessions.Get(ctx, input.ID)
	return sessionOutput(session, err)
}

// Open handles POST /sessions/{id}/open
func (h *SessionHandler) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	session, decision, err := h.sessions.Open(ctx, input.ID, input.Body.URL, input.Body.Type)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &OpenOutput{Body: responses.OpenResponse{
		Session:  *mappers.ToSessionResponse(session),
		Decision: mappers.ToViewerDecisionResponse(decision),
	}}, nil
}

// OpenText handles POST /sessions/{id}/text
func (h *SessionHandler) OpenText(ctx context.Context, input *OpenTextInput) (*SessionOutput, error) {
	session, err := h.sessions.OpenText(ctx, input.ID, input.Body.Content, input.Body.Title)
	return sessionOutput(session, err)
}

// Back handles POST /sessions/{id}/back
func (h *SessionHandler) Back(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	session, err := h.sessions.Back(ctx, input.ID)
	return sessionOutput(session, err)
}

// Forward handles POST /sessions/{id}/forward
func (h *SessionHandler) Forward(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	session, err := h.sessions.Forward(ctx, input.ID)
	return sessionOutput(session, err)
}

// ReaderMode handles POST /sessions/{id}/reader
func (h *SessionHandler) ReaderMode(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	session, err := h.sessions.SwitchToReaderMode(ctx, input.ID)
	return sessionOutput(session, err)
}

// Close handles DELETE /sessions/{id}
func (h *SessionHandler) Close(ctx context.Context, input *SessionIDInput) (*struct{}, error) {
	if err := h.sessions.Close(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

func sessionOutput(session *domain.Session, err error) (*SessionOutput, error) {
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(session)}, nil
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitview-api/core/domain"
	"splitview-api/core/errors"
)

const testSessionID = "6f1c2a7e-3b8d-4c5e-9f10-2a3b4c5d6e7f"

func sessionWith(entries ...domain.HistoryEntry) *domain.Session {
	s := domain.NewSession(time.Hour)
	s.ID = testSessionID
	for _, e := range entries {
		s.History.Open(e)
	}
	return s
}

func decodeSession(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestSessionHandler_Create(t *testing.T) {
	sessions := &mockSessions{createFunc: func(ctx context.Context) (*domain.Session, error) {
		return sessionWith(), nil
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Post("/sessions")

	require.Equal(t, http.StatusCreated, resp.Code)
	body := decodeSession(t, resp.Body.Bytes())
	assert.Equal(t, testSessionID, body["id"])
	assert.Equal(t, float64(-1), body["cursor"])
	assert.Equal(t, false, body["canGoBack"])
}

func TestSessionHandler_Get_NotFound(t *testing.T) {
	sessions := &mockSessions{getFunc: func(ctx context.Context, id string) (*domain.Session, error) {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Get("/sessions/" + testSessionID)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSessionHandler_Open(t *testing.T) {
	var gotID, gotURL, gotHint string
	sessions := &mockSessions{openFunc: func(ctx context.Context, id, rawURL, hint string) (*domain.Session, domain.ViewerDecision, error) {
		gotID, gotURL, gotHint = id, rawURL, hint
		decision := domain.ViewerDecision{
			Target:       domain.ResolvedTarget{RawURL: rawURL, UnwrappedURL: rawURL, Category: domain.CategoryVideo, EmbedURL: "https://www.youtube.com/embed/abc"},
			Presentation: domain.PresentationIframe,
			URL:          "https://www.youtube.com/embed/abc",
		}
		return sessionWith(domain.HistoryEntry{URL: decision.URL, Type: domain.PresentationIframe}), decision, nil
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Post("/sessions/"+testSessionID+"/open", map[string]interface{}{
		"url": "https://youtu.be/abc",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, testSessionID, gotID)
	assert.Equal(t, "https://youtu.be/abc", gotURL)
	assert.Equal(t, "", gotHint)

	var body struct {
		Session struct {
			Cursor  int `json:"cursor"`
			Current struct {
				URL string `json:"url"`
			} `json:"current"`
		} `json:"session"`
		Decision struct {
			Presentation string `json:"presentation"`
			Category     string `json:"category"`
		} `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Session.Cursor)
	assert.Equal(t, "https://www.youtube.com/embed/abc", body.Session.Current.URL)
	assert.Equal(t, "iframe", body.Decision.Presentation)
	assert.Equal(t, "video", body.Decision.Category)
}

func TestSessionHandler_OpenText(t *testing.T) {
	sessions := &mockSessions{openTextFunc: func(ctx context.Context, id, content, title string) (*domain.Session, error) {
		s := sessionWith()
		s.History.OpenText(content, title)
		return s, nil
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Post("/sessions/"+testSessionID+"/text", map[string]interface{}{
		"content": "Some notes",
		"title":   "Notes",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	body := decodeSession(t, resp.Body.Bytes())
	current := body["current"].(map[string]interface{})
	assert.Equal(t, "text", current["type"])
	assert.Equal(t, "Some notes", current["textContent"])
	assert.Equal(t, "Notes", current["textTitle"])
}

func TestSessionHandler_Navigation(t *testing.T) {
	var ops []string
	sessions := &mockSessions{navFunc: func(ctx context.Context, op, id string) (*domain.Session, error) {
		ops = append(ops, op)
		return sessionWith(
			domain.HistoryEntry{URL: "https://a.example", Type: domain.PresentationIframe},
			domain.HistoryEntry{URL: "https://b.example", Type: domain.PresentationIframe},
		), nil
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	for _, path := range []string{"back", "forward", "reader"} {
		resp := api.Post("/sessions/" + testSessionID + "/" + path)
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}

	assert.Equal(t, []string{"back", "forward", "reader"}, ops)
}

func TestSessionHandler_Close(t *testing.T) {
	var closed string
	sessions := &mockSessions{closeFunc: func(ctx context.Context, id string) error {
		if id != testSessionID {
			return &errors.NotFoundError{Resource: "session", ID: id}
		}
		closed = id
		return nil
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Delete("/sessions/" + testSessionID)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, testSessionID, closed)

	resp = api.Delete("/sessions/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSessionHandler_InvalidID(t *testing.T) {
	sessions := &mockSessions{getFunc: func(ctx context.Context, id string) (*domain.Session, error) {
		return nil, &errors.ValidationError{Field: "id", Message: "session ID must be a UUID"}
	}}
	_, api := humatest.New(t)
	NewSessionHandler(sessions).RegisterRoutes(api)

	resp := api.Get("/sessions/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

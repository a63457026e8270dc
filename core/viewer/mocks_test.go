package viewer

import (
	"context"
	"encoding/json"

	"splitview-api/core/domain"
)

// mockProber is a mock implementation of the EmbedProber interface
type mockProber struct {
	probeFunc func(ctx context.Context, url string) domain.EmbedDecision
	calls     []string
}

func (m *mockProber) Probe(ctx context.Context, url string) domain.EmbedDecision {
	m.calls = append(m.calls, url)
	if m.probeFunc != nil {
		return m.probeFunc(ctx, url)
	}
	return domain.EmbedDecision{URL: url, CanEmbed: domain.EmbedAllowed}
}

func proberReturning(status domain.EmbedStatus) *mockProber {
	return &mockProber{probeFunc: func(ctx context.Context, url string) domain.EmbedDecision {
		return domain.EmbedDecision{URL: url, CanEmbed: status, Reason: "test"}
	}}
}

// mockSessionStorage is a mock implementation of SessionStorage. Without
// function fields it round-trips sessions through JSON in a map.
type mockSessionStorage struct {
	saveFunc   func(ctx context.Context, session *domain.Session) error
	getFunc    func(ctx context.Context, id string) (*domain.Session, error)
	deleteFunc func(ctx context.Context, id string) error
	data       map[string][]byte
}

func newMockSessionStorage() *mockSessionStorage {
	return &mockSessionStorage{data: map[string][]byte{}}
}

func (m *mockSessionStorage) Save(ctx context.Context, session *domain.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, session)
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.data[session.ID] = raw
	return nil
}

func (m *mockSessionStorage) Get(ctx context.Context, id string) (*domain.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	raw, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *mockSessionStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	delete(m.data, id)
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

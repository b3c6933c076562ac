package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Memory is the in-memory store. It is the degraded mode when Postgres is
// unavailable and the natural double in tests. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]Document
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string]Document)}
}

func (m *Memory) Add(_ context.Context, text string, metadata map[string]string) (string, error) {
	if text == "" {
		return "", errors.New("document text is empty")
	}

	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = append(m.order, id)
	m.docs[id] = Document{ID: id, Text: text, Metadata: copyMetadata(metadata)}
	return id, nil
}

func (m *Memory) GetByID(_ context.Context, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	doc.Metadata = copyMetadata(doc.Metadata)
	return &doc, nil
}

func (m *Memory) GetAll(_ context.Context) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Document, 0, len(m.order))
	for _, id := range m.order {
		doc := m.docs[id]
		doc.Metadata = copyMetadata(doc.Metadata)
		out = append(out, doc)
	}
	return out, nil
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs), nil
}

func (m *Memory) Delete(_ context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return false
	}
	delete(m.docs, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

func (m *Memory) Clear(_ context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
	m.docs = make(map[string]Document)
	return true
}

func (m *Memory) Close() error { return nil }

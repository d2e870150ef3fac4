package settings

import(
	"context"
	"sync"
)

// Memory is a Store that lives for the lifetime of the process.
type Memory struct {
	mu  sync.Mutex
	doc Document
}

func NewMemory() *Memory { return &Memory{doc: Document{}} }

func (m *Memory)Load(ctx context.Context) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone(), nil
}

func (m *Memory)Save(ctx context.Context, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc.Clone()
	return nil
}

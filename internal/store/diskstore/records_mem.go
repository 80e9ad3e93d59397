package diskstore

import "sync"

// memRecords хранит записи только в оперативной памяти; удобно для тестов движка.
type memRecords struct {
	mu   sync.RWMutex
	data map[string]string
}

// newMemRecords создаёт пустое in-memory хранилище записей.
func newMemRecords() *memRecords {
	return &memRecords{data: map[string]string{}}
}

func (m *memRecords) key(id, field string) string {
	return id + "." + field
}

func (m *memRecords) CreateEmpty(id, field string) error {
	return m.WriteText(id, field, "")
}

func (m *memRecords) WriteText(id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[m.key(id, field)] = value

	return nil
}

func (m *memRecords) ReadText(id, field string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[m.key(id, field)]

	return v, ok, nil
}

func (m *memRecords) Delete(id, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, m.key(id, field))

	return nil
}

package persistence

// Ensure Memory implements KV
var _ KV = (*Memory)(nil)

// Memory is an in-process KV backend. It backs tests and any session where
// durability across restarts is not wanted.
type Memory struct {
	values map[string][]byte
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Read returns a copy of the stored value so callers cannot mutate the
// backend's state through the returned slice.
func (m *Memory) Read(key string) ([]byte, bool, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Write stores a copy of value under key.
func (m *Memory) Write(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Delete removes key if present.
func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}

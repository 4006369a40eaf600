package kvstore

import "context"

// MemoryStore is a map-backed Store used in tests and throwaway sessions.
// The fault hooks let tests inject failures on specific operations.
type MemoryStore struct {
	data map[string][]byte

	// Optional fault hooks; a non-nil hook runs before the operation and
	// aborts it when it returns an error.
	GetErr    func(key string) error
	SetErr    func(key string) error
	DeleteErr func(key string) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.GetErr != nil {
		if err := m.GetErr(key); err != nil {
			return nil, err
		}
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if m.SetErr != nil {
		if err := m.SetErr(key); err != nil {
			return err
		}
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		if err := m.DeleteErr(key); err != nil {
			return err
		}
	}
	delete(m.data, key)
	return nil
}

package store

// Memory is an in-memory KV used by tests and anywhere persistence is
// not wanted.
type Memory struct {
	slots map[string][]byte
}

var _ KV = (*Memory)(nil)

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Load(slot string) ([]byte, error) {
	return m.slots[slot], nil
}

func (m *Memory) Save(slot string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.slots[slot] = cp
	return nil
}

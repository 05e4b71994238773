package state

// Mock is a test double for Manager. Saves apply at once.
type Mock struct {
	positions map[string]Position
	saves     int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]Position)}
}

func (m *Mock) GetPosition(gallery string) (*Position, error) {
	p, ok := m.positions[gallery]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &p, nil
}

func (m *Mock) SavePosition(p Position) {
	m.positions[p.Gallery] = p
	m.saves++
}

// Saves returns how many positions were saved.
func (m *Mock) Saves() int {
	return m.saves
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

var _ Interface = (*Mock)(nil)

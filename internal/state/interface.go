package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPosition(gallery string) (*Position, error)
	SavePosition(p Position)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

package cart

// Storage persists a cart's lines under one well-known key. The host
// environment decides the concrete backend once at startup: a local file
// when only synchronous storage is available, Redis when the process has
// a key-value server to talk to. The store depends only on this
// interface.
type Storage interface {
	// Load returns the previously persisted lines. A missing or
	// unparseable payload yields (nil, nil), never an error.
	Load() ([]Line, error)
	// Save overwrites the persisted payload with the given lines.
	Save(lines []Line) error
	// Clear removes the persisted payload entirely.
	Clear() error
}

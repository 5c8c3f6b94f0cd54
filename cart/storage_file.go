package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^\w\-.]`)

// FileStorage keeps the serialized cart in one JSON file per key under a
// data directory. Writes are synchronous; any filesystem error is
// reported to the store, which degrades to memory-only.
type FileStorage struct {
	path string
}

// NewFileStorage builds a file-backed storage for the given key. The key
// is sanitized the same way uploaded filenames are, so a session id can
// be used directly.
func NewFileStorage(dir, key string) *FileStorage {
	name := unsafeKeyChars.ReplaceAllString(key, "_") + ".json"
	return &FileStorage{path: filepath.Join(dir, name)}
}

func (f *FileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		// Corrupt payload: start from an empty cart.
		return nil, nil
	}
	return lines, nil
}

func (f *FileStorage) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

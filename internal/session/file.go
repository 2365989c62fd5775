package session

import (
	"encoding/json"
	"os"
	"sync"
)

// FileStore persists session state as a JSON object on disk, the desktop
// equivalent of the browser's local storage. Writes are flushed on every
// mutation; a write failure keeps the in-memory state so the current process
// still behaves correctly.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		// A corrupt state file is treated as empty rather than fatal,
		// the same way the web client survived garbage in local storage.
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.flush()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.flush()
}

func (s *FileStore) flush() {
	data, err := json.Marshal(s.values)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

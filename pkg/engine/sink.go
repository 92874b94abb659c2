package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ArtifactSink receives the files terminal handlers emit. It is injected
// into the run so the engine stays free of implicit filesystem paths.
type ArtifactSink interface {
	Write(name string, data []byte) error
}

// DirSink writes artifacts into a directory, creating it on first write.
type DirSink struct {
	Dir string
}

func (s *DirSink) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	return nil
}

// MemorySink collects artifacts in memory. Intended for tests.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *MemorySink) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.files[name] = buf
	return nil
}

// Get returns the artifact written under name, if any.
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	return data, ok
}

// Names returns the artifact names written so far.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	return names
}

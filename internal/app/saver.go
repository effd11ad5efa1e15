package app

import (
	"bytes"
	"context"
	"sync"

	"github.com/zjrosen/vedit/internal/editor"
)

// trackingSaver remembers the last content it wrote so the change watcher
// can tell our own writes from other programs'.
type trackingSaver struct {
	inner editor.Saver

	mu   sync.Mutex
	last []byte
}

func newTrackingSaver(inner editor.Saver) *trackingSaver {
	return &trackingSaver{inner: inner}
}

// Save implements editor.Saver.
func (s *trackingSaver) Save(ctx context.Context, path string, content []byte) error {
	if err := s.inner.Save(ctx, path, content); err != nil {
		return err
	}
	s.mu.Lock()
	s.last = bytes.Clone(content)
	s.mu.Unlock()
	return nil
}

// wrote reports whether content equals the last successful save.
func (s *trackingSaver) wrote(content []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last != nil && bytes.Equal(s.last, content)
}

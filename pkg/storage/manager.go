// Package storage provides a small handle registry over seekable byte
// sources. Archives keep a Handle rather than an *os.File so that one Manager
// owns every open file and can release them together.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrBadHandle is returned for handles that were never issued or are closed.
var ErrBadHandle = errors.New("invalid storage handle")

// Handle identifies an open source within a Manager.
type Handle int

// Source is the minimum a backing store has to offer.
type Source interface {
	io.Reader
	io.Seeker
}

type openSource struct {
	name string
	src  Source
}

// Manager owns open sources. It is not safe for concurrent use.
type Manager struct {
	sources map[Handle]*openSource
	next    Handle
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{sources: make(map[Handle]*openSource)}
}

// OpenRead opens a file read-only and registers it.
func (m *Manager) OpenRead(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return -1, err
	}
	return m.Register(filepath.Base(path), f), nil
}

// Register adds an already open source under name. If src implements
// io.Closer it is closed when the handle is released.
func (m *Manager) Register(name string, src Source) Handle {
	h := m.next
	m.next++
	m.sources[h] = &openSource{name: name, src: src}
	return h
}

func (m *Manager) lookup(h Handle) (*openSource, error) {
	s, ok := m.sources[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	return s, nil
}

// Seek moves the read position of h.
func (m *Manager) Seek(h Handle, offset int64, whence int) (int64, error) {
	s, err := m.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.src.Seek(offset, whence)
}

// Read performs a single read call; it may return fewer bytes than len(buf).
func (m *Manager) Read(h Handle, buf []byte) (int, error) {
	s, err := m.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.src.Read(buf)
}

// ReadSeeker exposes h as an io.ReadSeeker. Every call goes back through the
// Manager, so once h is closed the view fails with ErrBadHandle.
func (m *Manager) ReadSeeker(h Handle) (io.ReadSeeker, error) {
	if _, err := m.lookup(h); err != nil {
		return nil, err
	}
	return &handleView{m: m, h: h}, nil
}

type handleView struct {
	m *Manager
	h Handle
}

func (v *handleView) Read(p []byte) (int, error) {
	return v.m.Read(v.h, p)
}

func (v *handleView) Seek(offset int64, whence int) (int64, error) {
	return v.m.Seek(v.h, offset, whence)
}

// Filename returns the base name the handle was registered under.
func (m *Manager) Filename(h Handle) (string, bool) {
	s, ok := m.sources[h]
	if !ok {
		return "", false
	}
	return s.name, true
}

// Close releases one handle. Other handles stay valid.
func (m *Manager) Close(h Handle) error {
	s, err := m.lookup(h)
	if err != nil {
		return err
	}
	delete(m.sources, h)
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// CloseAll releases every handle and returns the first close error.
func (m *Manager) CloseAll() error {
	var first error
	for h := range m.sources {
		if err := m.Close(h); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Len reports how many handles are open.
func (m *Manager) Len() int {
	return len(m.sources)
}

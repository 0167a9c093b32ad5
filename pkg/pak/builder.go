package pak

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// Builder assembles a new archive in memory. Layout: header, file contents in
// insertion order, then the directory.
type Builder struct {
	entries []Entry
	data    [][]byte
	names   map[string]bool
	logger  hclog.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return NewBuilderWithLogger(hclog.NewNullLogger())
}

// NewBuilderWithLogger creates an empty builder with a custom logger
func NewBuilderWithLogger(logger hclog.Logger) *Builder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{names: make(map[string]bool), logger: logger}
}

// Add queues a file for the archive.
func (b *Builder) Add(name string, data []byte) error {
	if len(name) >= EntryNameSize {
		return fmt.Errorf("%w: %q", ErrNameTooLong, name)
	}
	if b.names[name] {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	b.names[name] = true
	b.entries = append(b.entries, Entry{Name: name, Length: int32(len(data))})
	b.data = append(b.data, data)
	return nil
}

// Bytes returns the complete archive.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the archive to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	pos := int64(HeaderSize)
	for i := range b.entries {
		b.entries[i].Position = int32(pos)
		pos += int64(len(b.data[i]))
	}

	header := Header{
		Magic:           Magic,
		DirectoryOffset: int32(pos),
		DirectoryLength: int32(len(b.entries) * EntrySize),
	}

	var written int64
	write := func(p []byte) error {
		n, err := w.Write(p)
		written += int64(n)
		return err
	}

	if err := write(header.Pack()); err != nil {
		return written, fmt.Errorf("writing header: %w", err)
	}
	for i, data := range b.data {
		if err := write(data); err != nil {
			return written, fmt.Errorf("writing %q: %w", b.entries[i].Name, err)
		}
	}
	for _, e := range b.entries {
		record, err := e.Pack()
		if err != nil {
			return written, err
		}
		if err := write(record); err != nil {
			return written, fmt.Errorf("writing directory: %w", err)
		}
	}

	b.logger.Debug("wrote archive",
		"entries", len(b.entries),
		"directory_offset", header.DirectoryOffset,
		"size", written,
	)
	return written, nil
}

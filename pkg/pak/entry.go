package pak

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// Entry is one directory record: a named byte range inside the archive.
type Entry struct {
	Name     string
	Position int32
	Length   int32
}

// Pack serializes the entry to exactly 64 bytes, NUL padding the name.
func (e *Entry) Pack() ([]byte, error) {
	if len(e.Name) >= EntryNameSize {
		return nil, fmt.Errorf("%w: %q", ErrNameTooLong, e.Name)
	}
	buf := make([]byte, EntrySize)
	copy(buf[:EntryNameSize], e.Name)
	binary.LittleEndian.PutUint32(buf[56:60], uint32(e.Position))
	binary.LittleEndian.PutUint32(buf[60:64], uint32(e.Length))
	return buf, nil
}

// UnpackEntry decodes a 64 byte directory record. The name runs up to the
// first NUL, or the whole field when there is none.
func UnpackEntry(data []byte) (Entry, error) {
	if len(data) != EntrySize {
		return Entry{}, fmt.Errorf("%w: entry is %d bytes, want %d", ErrFormat, len(data), EntrySize)
	}

	field := data[:EntryNameSize]
	if nul := bytes.IndexByte(field, 0); nul >= 0 {
		field = field[:nul]
	}
	if !utf8.Valid(field) {
		return Entry{}, fmt.Errorf("%w: % x", ErrDecode, field)
	}

	e := Entry{
		Name:     string(field),
		Position: int32(binary.LittleEndian.Uint32(data[56:60])),
		Length:   int32(binary.LittleEndian.Uint32(data[60:64])),
	}
	if e.Position < 0 || e.Length < 0 {
		return Entry{}, fmt.Errorf("%w: entry %q at %d, length %d", ErrNegativeRange, e.Name, e.Position, e.Length)
	}
	return e, nil
}

// ReadDirectory seeks to the directory and decodes its records in on-disk order.
func ReadDirectory(rs io.ReadSeeker, h *Header) ([]Entry, error) {
	if _, err := rs.Seek(int64(h.DirectoryOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to directory: %w", err)
	}

	count := h.EntryCount()
	entries := make([]Entry, 0, min(count, maxPreallocEntries))
	record := make([]byte, EntrySize)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(rs, record); err != nil {
			return nil, fmt.Errorf("reading directory record %d: %w", i, err)
		}
		e, err := UnpackEntry(record)
		if err != nil {
			return nil, fmt.Errorf("directory record %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadEntryBytes seeks to the entry and reads exactly Length bytes. A single
// Read may come back short, so reads are accumulated until the range is
// complete; the first read error ends the loop. The buffer grows as data
// arrives, so a bogus Length costs at most what the source can deliver.
func ReadEntryBytes(rs io.ReadSeeker, e Entry) ([]byte, error) {
	if _, err := rs.Seek(int64(e.Position), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to %q: %w", e.Name, err)
	}

	want := int(e.Length)
	buf := make([]byte, 0, min(want, maxPreallocBytes))
	stalled := 0
	for len(buf) < want {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := rs.Read(buf[len(buf):min(cap(buf), want)])
		buf = buf[:len(buf)+n]
		if err == io.EOF && len(buf) < want {
			return nil, fmt.Errorf("reading %q: got %d of %d bytes: %w", e.Name, len(buf), want, io.ErrUnexpectedEOF)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading %q: %w", e.Name, err)
		}
		if n > 0 {
			stalled = 0
		} else if stalled++; stalled >= maxEmptyReads {
			return nil, fmt.Errorf("reading %q: %w", e.Name, io.ErrNoProgress)
		}
	}
	return buf, nil
}

// checkRange reports whether [pos, pos+length) lies inside an archive of size bytes.
func checkRange(pos, length int32, size int64) error {
	if int64(pos)+int64(length) > size {
		return fmt.Errorf("%w: %d+%d > %d", ErrOutOfBounds, pos, length, size)
	}
	return nil
}

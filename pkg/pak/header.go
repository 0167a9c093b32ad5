package pak

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the fixed 12 byte archive header.
type Header struct {
	Magic           [4]byte
	DirectoryOffset int32
	DirectoryLength int32
}

// EntryCount returns the number of directory records the header describes.
func (h *Header) EntryCount() int {
	return int(h.DirectoryLength) / EntrySize
}

// Pack serializes the header to bytes
func (h *Header) Pack() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.DirectoryOffset))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h.DirectoryLength))
	return buf
}

// UnpackHeader decodes and validates a header.
func UnpackHeader(data []byte) (*Header, error) {
	if len(data) != HeaderSize {
		return nil, fmt.Errorf("%w: header is %d bytes, want %d", ErrFormat, len(data), HeaderSize)
	}

	h := &Header{
		DirectoryOffset: int32(binary.LittleEndian.Uint32(data[4:8])),
		DirectoryLength: int32(binary.LittleEndian.Uint32(data[8:12])),
	}
	copy(h.Magic[:], data[0:4])

	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, h.Magic[:])
	}
	if h.DirectoryOffset < 0 || h.DirectoryLength < 0 {
		return nil, fmt.Errorf("%w: directory at %d, length %d", ErrNegativeRange, h.DirectoryOffset, h.DirectoryLength)
	}
	if h.DirectoryLength%EntrySize != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrDirectorySize, h.DirectoryLength)
	}
	return h, nil
}

// ReadHeader reads the header from the current position of r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return UnpackHeader(buf)
}

package pak

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// Archive is one parsed archive: its directory plus the source it was read
// from. It is immutable once opened.
type Archive struct {
	name    string
	header  *Header
	entries []Entry
	index   map[string]int
	src     io.ReadSeeker
}

// OpenArchive parses the header and directory of src.
func OpenArchive(name string, src io.ReadSeeker) (*Archive, error) {
	return OpenArchiveWithLogger(name, src, hclog.NewNullLogger())
}

// OpenArchiveWithLogger parses an archive, logging what it finds.
func OpenArchiveWithLogger(name string, src io.ReadSeeker, logger hclog.Logger) (*Archive, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &Error{Op: "header", Archive: name, Err: err}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, &Error{Op: "header", Archive: name, Err: err}
	}
	header, err := ReadHeader(src)
	if err != nil {
		return nil, &Error{Op: "header", Archive: name, Err: err}
	}
	if err := checkRange(header.DirectoryOffset, header.DirectoryLength, size); err != nil {
		return nil, &Error{Op: "header", Archive: name, Err: fmt.Errorf("directory: %w", err)}
	}
	logger.Trace("read archive header",
		"archive", name,
		"directory_offset", header.DirectoryOffset,
		"directory_length", header.DirectoryLength,
	)

	entries, err := ReadDirectory(src, header)
	if err != nil {
		return nil, &Error{Op: "directory", Archive: name, Err: err}
	}
	for _, e := range entries {
		if err := checkRange(e.Position, e.Length, size); err != nil {
			return nil, &Error{Op: "directory", Archive: name, Name: e.Name, Err: err}
		}
	}

	// First record wins if an archive lists a name twice.
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, seen := index[e.Name]; !seen {
			index[e.Name] = i
		}
	}

	logger.Debug("opened archive", "archive", name, "entries", len(entries))

	return &Archive{
		name:    name,
		header:  header,
		entries: entries,
		index:   index,
		src:     src,
	}, nil
}

// Name returns the archive's file name.
func (a *Archive) Name() string {
	return a.name
}

// Header returns the decoded header.
func (a *Archive) Header() Header {
	return *a.header
}

// Entries returns the directory in on-disk order.
func (a *Archive) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len returns the number of directory entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Lookup finds an entry by exact name.
func (a *Archive) Lookup(name string) (Entry, bool) {
	i, ok := a.index[name]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// ReadEntry streams the bytes of e out of the archive.
func (a *Archive) ReadEntry(e Entry) ([]byte, error) {
	data, err := ReadEntryBytes(a.src, e)
	if err != nil {
		return nil, &Error{Op: "read", Archive: a.name, Name: e.Name, Err: err}
	}
	return data, nil
}

// ReadFile reads the named entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	e, ok := a.Lookup(name)
	if !ok {
		return nil, &Error{Op: "read", Archive: a.name, Name: name, Err: ErrNotFound}
	}
	return a.ReadEntry(e)
}

func (a *Archive) String() string {
	return fmt.Sprintf("%s (%d entries)", a.name, len(a.entries))
}

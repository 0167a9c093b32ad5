package pak

import (
	"errors"
	"fmt"
)

var (
	// Format errors
	ErrFormat        = errors.New("invalid archive format")
	ErrInvalidMagic  = fmt.Errorf("%w: bad signature", ErrFormat)
	ErrDirectorySize = fmt.Errorf("%w: directory length is not a multiple of %d", ErrFormat, EntrySize)
	ErrNegativeRange = fmt.Errorf("%w: negative offset or length", ErrFormat)
	ErrOutOfBounds   = fmt.Errorf("%w: range extends past end of archive", ErrFormat)

	// Lookup errors
	ErrNotFound       = errors.New("resource not found")
	ErrUnknownArchive = errors.New("archive not mounted")

	// Name errors
	ErrDecode        = errors.New("entry name is not valid text")
	ErrNameTooLong   = fmt.Errorf("entry name must be shorter than %d bytes", EntryNameSize)
	ErrDuplicateName = errors.New("duplicate entry name")
)

// Error records the archive operation that failed.
type Error struct {
	Op      string // open, header, directory, read, resolve
	Archive string // archive file name, if known
	Name    string // entry name, if any
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Archive != "" && e.Name != "":
		return fmt.Sprintf("pak %s %s:%s: %v", e.Op, e.Archive, e.Name, e.Err)
	case e.Archive != "":
		return fmt.Sprintf("pak %s %s: %v", e.Op, e.Archive, e.Err)
	case e.Name != "":
		return fmt.Sprintf("pak %s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("pak %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

package pak

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/storage"
)

// Catalog resolves resource names across mounted archives. Archives are
// searched in mount order and the first one holding a name wins.
type Catalog struct {
	archives []*Archive
	handles  []storage.Handle
	storage  *storage.Manager
	logger   hclog.Logger
}

// CatalogEntry is one directory entry as seen through the catalog.
type CatalogEntry struct {
	Archive  string
	Entry    Entry
	Shadowed bool // an earlier mounted archive has the same name
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return NewCatalogWithLogger(hclog.NewNullLogger())
}

// NewCatalogWithLogger creates an empty catalog with a custom logger
func NewCatalogWithLogger(logger hclog.Logger) *Catalog {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Catalog{
		storage: storage.NewManager(),
		logger:  logger,
	}
}

// Mount opens and parses the archive at path and appends it to the mount list.
func (c *Catalog) Mount(path string) error {
	h, err := c.storage.OpenRead(path)
	if err != nil {
		return &Error{Op: "open", Archive: path, Err: err}
	}
	return c.mountHandle(h)
}

// MountSource mounts an already open source under name.
func (c *Catalog) MountSource(name string, src storage.Source) error {
	return c.mountHandle(c.storage.Register(name, src))
}

func (c *Catalog) mountHandle(h storage.Handle) error {
	name, _ := c.storage.Filename(h)
	rs, err := c.storage.ReadSeeker(h)
	if err != nil {
		return err
	}

	archive, err := OpenArchiveWithLogger(name, rs, c.logger.Named("archive"))
	if err != nil {
		_ = c.storage.Close(h)
		return err
	}

	c.archives = append(c.archives, archive)
	c.handles = append(c.handles, h)
	c.logger.Debug("mounted archive",
		"archive", name,
		"entries", archive.Len(),
		"precedence", len(c.archives)-1,
	)
	return nil
}

// MountDirectory mounts pak0.pak, pak1.pak, ... from dir, stopping at the
// first missing number. Higher numbers are mounted first so that later
// archives shadow the base content. If any archive fails to mount, the ones
// this call already mounted are removed again; earlier mounts are kept.
func (c *Catalog) MountDirectory(dir string) error {
	var found []string
	for i := 0; i < maxProbedArchives; i++ {
		path, ok := probeArchive(dir, i)
		if !ok {
			break
		}
		found = append(found, path)
	}

	if len(found) == 0 {
		return &Error{Op: "open", Archive: dir, Err: fmt.Errorf("%w: no pak0.pak", ErrNotFound)}
	}

	c.logger.Debug("probed archive directory", "dir", dir, "archives", len(found))

	// All or nothing: a failure unmounts what this call added.
	start := len(c.archives)
	for i := len(found) - 1; i >= 0; i-- {
		if err := c.Mount(found[i]); err != nil {
			c.unmountFrom(start)
			return err
		}
	}
	return nil
}

// unmountFrom drops archives at precedence n and later and closes their handles.
func (c *Catalog) unmountFrom(n int) {
	for i, h := range c.handles[n:] {
		if err := c.storage.Close(h); err != nil {
			c.logger.Debug("failed to close archive", "archive", c.archives[n+i].Name(), "error", err)
		}
	}
	c.archives = c.archives[:n]
	c.handles = c.handles[:n]
}

func probeArchive(dir string, n int) (string, bool) {
	for _, pattern := range []string{archivePattern, archivePatternUpper} {
		path := filepath.Join(dir, fmt.Sprintf(pattern, n))
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, true
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}
	}
	return "", false
}

// Locate returns the archive and entry that Resolve would read for name.
func (c *Catalog) Locate(name string) (*Archive, Entry, bool) {
	for _, a := range c.archives {
		if e, ok := a.Lookup(name); ok {
			return a, e, true
		}
	}
	return nil, Entry{}, false
}

// Resolve returns the bytes of name from the first mounted archive that has it.
func (c *Catalog) Resolve(name string) ([]byte, error) {
	a, e, ok := c.Locate(name)
	if !ok {
		c.logger.Debug("resource not found", "name", name, "archives", len(c.archives))
		return nil, &Error{Op: "resolve", Name: name, Err: ErrNotFound}
	}

	c.logger.Trace("resolved resource", "name", name, "archive", a.Name(), "length", e.Length)
	return a.ReadEntry(e)
}

// ReadFrom reads name from one specific mounted archive.
func (c *Catalog) ReadFrom(archiveName, name string) ([]byte, error) {
	for _, a := range c.archives {
		if a.Name() == archiveName {
			return a.ReadFile(name)
		}
	}
	return nil, &Error{Op: "read", Archive: archiveName, Name: name, Err: ErrUnknownArchive}
}

// Archives returns the mounted archives in precedence order.
func (c *Catalog) Archives() []*Archive {
	out := make([]*Archive, len(c.archives))
	copy(out, c.archives)
	return out
}

// List returns every entry of every archive in precedence order, flagging
// names hidden by an earlier archive.
func (c *Catalog) List() []CatalogEntry {
	seen := make(map[string]bool)
	var out []CatalogEntry
	for _, a := range c.archives {
		for _, e := range a.entries {
			out = append(out, CatalogEntry{
				Archive:  a.Name(),
				Entry:    e,
				Shadowed: seen[e.Name],
			})
		}
		for _, e := range a.entries {
			seen[e.Name] = true
		}
	}
	return out
}

// Close unmounts every archive and releases its storage.
func (c *Catalog) Close() error {
	c.archives = nil
	c.handles = nil
	return c.storage.CloseAll()
}

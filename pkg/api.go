package pkg

import (
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/pak"
	"github.com/provide-io/pakfb/pkg/raster"
)

// OpenCatalog mounts every numbered archive in basedir.
func OpenCatalog(basedir string, logger hclog.Logger) (*pak.Catalog, error) {
	cat := pak.NewCatalogWithLogger(logger)
	if err := cat.MountDirectory(basedir); err != nil {
		cat.Close()
		return nil, err
	}
	return cat, nil
}

// OpenArchives mounts the given archive paths in order, so the first path
// takes precedence.
func OpenArchives(paths []string, logger hclog.Logger) (*pak.Catalog, error) {
	cat := pak.NewCatalogWithLogger(logger)
	for _, p := range paths {
		if err := cat.Mount(p); err != nil {
			cat.Close()
			return nil, err
		}
	}
	return cat, nil
}

// NewFramebuffer creates a framebuffer using the catalog's palette.
func NewFramebuffer(width, height int, cat *pak.Catalog) (*raster.Framebuffer, error) {
	return raster.New(width, height, cat)
}

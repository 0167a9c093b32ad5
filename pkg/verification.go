package pkg

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/provide-io/pakfb/pkg/logging"
	"github.com/provide-io/pakfb/pkg/pak"
)

// VerifyCatalogWithLogger reads every entry of every mounted archive and
// checks that the palette resolves. Problems are logged and summarised in
// an error wrapping ErrVerificationFailed.
func VerifyCatalogWithLogger(cat *pak.Catalog, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	archives := cat.Archives()
	if len(archives) == 0 {
		return ErrNoArchivesMounted
	}

	logger.Info("Verifying catalog", "archives", len(archives))

	errors := []string{}

	for _, a := range archives {
		failed := 0
		for _, e := range a.Entries() {
			if _, err := a.ReadEntry(e); err != nil {
				failed++
				errors = append(errors, fmt.Sprintf("%s: %s: %v", a.Name(), e.Name, err))
				logger.Error("Entry read failed", "archive", a.Name(), "name", e.Name, "error", err)
			}
		}
		if failed == 0 {
			logger.Info("✓ Archive readable", "archive", a.Name(), "entries", a.Len())
		} else {
			logger.Error("✗ Archive has unreadable entries", "archive", a.Name(), "failed", failed)
		}
	}

	if _, err := lmp.LoadPalette(cat); err != nil {
		errors = append(errors, err.Error())
		logger.Error("Palette verification failed", "error", err)
	} else {
		logger.Info("✓ Palette valid")
	}

	if len(errors) > 0 {
		logger.Error("✗ Catalog verification failed", "error_count", len(errors))
		for _, e := range errors {
			logger.Error("  Verification error", "details", e)
		}
		return fmt.Errorf("%w: %d problem(s), first: %s", ErrVerificationFailed, len(errors), errors[0])
	}

	logger.Info("✓ Catalog verification passed")
	return nil
}

// VerifyCatalog verifies a catalog using default logger settings
func VerifyCatalog(cat *pak.Catalog) error {
	logger := logging.NewLogger("pakfb-verify", logging.GetLogLevel(), nil)
	return VerifyCatalogWithLogger(cat, logger)
}

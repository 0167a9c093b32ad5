package pkg

import "errors"

var (
	// Verification errors
	ErrVerificationFailed = errors.New("❌ catalog verification failed")
	ErrNoArchivesMounted  = errors.New("❌ no archives mounted")
)

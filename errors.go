package scrap

import "errors"

var (
	// ErrNotInitialized is returned when a typed operation is used before
	// Init has succeeded.
	ErrNotInitialized = errors.New("scrap is not initialized")

	// ErrInvalidMode is returned by SetMode for values that are neither
	// ModeClipboard nor ModeSelection.
	ErrInvalidMode = errors.New("invalid clipboard mode")

	// ErrTextUnavailable is returned by GetText when the backend claims
	// text is present but yields none.
	ErrTextUnavailable = errors.New("clipboard reports text but none could be read")
)

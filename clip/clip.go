// Package clip provides typed access to the system clipboard across
// platforms. Build constraints select the appropriate implementation:
//
//	clip_linux.go    — golang.design/x/clipboard + xclip/xsel for the PRIMARY selection
//	clip_darwin.go   — golang.design/x/clipboard + cgo NSPasteboard changeCount
//	clip_windows.go  — golang.design/x/clipboard + GetClipboardSequenceNumber
//	clip_other.go    — headless / container stub
package clip

import "errors"

// ErrNoDisplay is returned when no display environment is available and
// clipboard access is therefore impossible.
var ErrNoDisplay = errors.New("no display environment available")

// Buffer identifies which system buffer an operation targets. X11 keeps a
// PRIMARY selection (the mouse highlight) separate from the explicit
// copy/paste clipboard; every other platform only has the clipboard.
type Buffer int

const (
	BufferClipboard Buffer = iota
	BufferSelection
)

func (b Buffer) String() string {
	switch b {
	case BufferClipboard:
		return "clipboard"
	case BufferSelection:
		return "selection"
	}
	return "unknown"
}

// Backend is the interface that all platform clipboard implementations
// satisfy. Hosts construct one via New (or supply their own) and hand it to
// scrap.New.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Init acquires clipboard resources. It must be called after the host's
	// windowing environment is up and before any typed operation.
	Init() error

	// SupportsSelection reports whether the platform keeps a selection
	// buffer distinct from the clipboard.
	SupportsSelection() bool

	// Lost reports whether another application has taken ownership of buf
	// since this process last wrote to it. A buffer this process never
	// wrote to is always lost.
	Lost(buf Buffer) bool

	// Types returns the format types currently available on buf.
	Types(buf Buffer) []string

	// Contains reports whether buf currently holds content under typ.
	Contains(buf Buffer, typ string) bool

	// Get returns the payload stored under typ, or nil, nil if buf holds
	// nothing for that type. The returned slice is owned by the caller.
	Get(buf Buffer, typ string) ([]byte, error)

	// Put replaces the contents of buf with data tagged as typ.
	Put(buf Buffer, typ string, data []byte) error

	// GetText, SetText and HasText form the plain-text path. They always
	// operate on the clipboard buffer and are usable before Init.
	GetText() (string, error)
	SetText(text string) error
	HasText() bool

	// Watch returns a channel that receives a signal whenever the clipboard
	// changes. The channel is never closed. On platforms without native
	// change notification this is implemented via polling.
	Watch() <-chan struct{}

	// Close releases any resources held by the backend.
	Close()
}

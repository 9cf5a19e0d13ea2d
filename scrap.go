// Package scrap exposes the system clipboard — plain text and typed binary
// payloads — to a host runtime. A Board shadows everything this process puts
// on the clipboard in per-mode caches, so reads can be answered locally for
// as long as no other application has taken the clipboard over.
//
// The typed API (Init, SetMode, Get, Put, Contains, Types, Lost) exists for
// compatibility with older hosts and reports itself as deprecated through a
// pluggable notice sink; new callers should prefer GetText/PutText/HasText,
// which need no Init and no mode.
package scrap

import (
	"bytes"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"go.klb.dev/scrap/clip"
)

// Mode selects which system buffer typed operations target. X11 keeps a
// PRIMARY selection separate from the clipboard; on every other platform
// ModeSelection is coerced to ModeClipboard by SetMode.
type Mode = clip.Buffer

const (
	ModeClipboard = clip.BufferClipboard
	ModeSelection = clip.BufferSelection
)

// NoticeFunc receives the name of a deprecated operation before it runs.
// Returning a non-nil error aborts the operation and is returned to the
// caller unchanged, for hosts that escalate deprecation notices into hard
// failures.
type NoticeFunc func(op string) error

func defaultNotice(op string) error {
	slog.Warn("deprecated scrap call", "op", op, "hint", "use the text API instead")
	return nil
}

// Option configures a Board.
type Option func(*Board)

// WithNotice replaces the default deprecation sink (a slog warning).
func WithNotice(fn NoticeFunc) Option {
	return func(b *Board) { b.notice = fn }
}

// Board provides clipboard access over an injected backend.
//
// A Board keeps plain mutable state with no internal locking; hosts that
// call it from multiple goroutines must serialize access themselves.
type Board struct {
	backend clip.Backend
	notice  NoticeFunc

	initialized bool
	mode        Mode
	cache       map[Mode]map[string][]byte
}

// New returns a Board over backend. The Board is not yet initialized; typed
// operations fail with ErrNotInitialized until Init succeeds. The text API
// is usable immediately.
func New(backend clip.Backend, opts ...Option) *Board {
	b := &Board{
		backend: backend,
		notice:  defaultNotice,
		mode:    ModeClipboard,
	}
	b.resetCaches()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) resetCaches() {
	b.cache = map[Mode]map[string][]byte{
		ModeClipboard: {},
		ModeSelection: {},
	}
}

func (b *Board) checkInit() error {
	if !b.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Backend returns the backend this Board was built over.
func (b *Board) Backend() clip.Backend { return b.backend }

// Init acquires clipboard resources from the backend. The first successful
// call starts with empty caches; once initialized, further calls are no-ops
// and in particular do not clear caches populated in between.
//
// Deprecated: prefer the text API, which needs no initialization.
func (b *Board) Init() error {
	if err := b.notice("init"); err != nil {
		return err
	}
	if b.initialized {
		return nil
	}
	b.resetCaches()
	if err := b.backend.Init(); err != nil {
		return fmt.Errorf("scrap: init: %w", err)
	}
	b.initialized = true
	return nil
}

// IsInitialized reports whether Init has succeeded. Always available, never
// fails, and emits no notice.
func (b *Board) IsInitialized() bool { return b.initialized }

// Mode returns the currently active mode.
func (b *Board) Mode() Mode { return b.mode }

// SetMode switches typed operations between the clipboard and the selection
// buffer. The mode value is validated on every platform; on platforms
// without a distinct selection buffer a valid ModeSelection is then silently
// coerced to ModeClipboard, so that callers setting a mode defensively
// behave identically everywhere.
//
// Deprecated: prefer the text API.
func (b *Board) SetMode(m Mode) error {
	if err := b.notice("set_mode"); err != nil {
		return err
	}
	if err := b.checkInit(); err != nil {
		return err
	}
	if m != ModeClipboard && m != ModeSelection {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	if !b.backend.SupportsSelection() {
		m = ModeClipboard
	}
	b.mode = m
	return nil
}

// Put writes data to the active buffer tagged as typ and mirrors it into the
// mode's cache, so an immediate Get returns exactly these bytes without a
// round trip to the backend.
//
// Deprecated: prefer PutText.
func (b *Board) Put(typ string, data []byte) error {
	if err := b.notice("put"); err != nil {
		return err
	}
	if err := b.checkInit(); err != nil {
		return err
	}
	if err := b.backend.Put(b.mode, typ, data); err != nil {
		return fmt.Errorf("scrap: put %s: %w", typ, err)
	}
	b.cache[b.mode][typ] = bytes.Clone(data)
	return nil
}

// Get returns the payload stored under typ in the active mode, or nil, nil
// when nothing is there. While this process still owns the buffer the answer
// comes from the local cache and the backend is not consulted; once
// ownership is lost the live clipboard is queried instead, and that answer
// is not written back to the cache.
//
// Deprecated: prefer GetText.
func (b *Board) Get(typ string) ([]byte, error) {
	if err := b.notice("get"); err != nil {
		return nil, err
	}
	if err := b.checkInit(); err != nil {
		return nil, err
	}
	if !b.backend.Lost(b.mode) {
		data, ok := b.cache[b.mode][typ]
		if !ok {
			return nil, nil
		}
		return bytes.Clone(data), nil
	}
	data, err := b.backend.Get(b.mode, typ)
	if err != nil {
		return nil, fmt.Errorf("scrap: get %s: %w", typ, err)
	}
	return data, nil
}

// Contains reports whether the active buffer currently holds content under
// typ. It always reflects live backend state, never the cache.
//
// Deprecated: prefer the text API.
func (b *Board) Contains(typ string) (bool, error) {
	if err := b.notice("contains"); err != nil {
		return false, err
	}
	if err := b.checkInit(); err != nil {
		return false, err
	}
	return b.backend.Contains(b.mode, typ), nil
}

// Types lists the format types available in the active mode: the cache's
// keys while this process owns the buffer, the backend's live list once
// ownership is lost. The result is sorted.
//
// Deprecated: prefer the text API.
func (b *Board) Types() ([]string, error) {
	if err := b.notice("get_types"); err != nil {
		return nil, err
	}
	if err := b.checkInit(); err != nil {
		return nil, err
	}
	if !b.backend.Lost(b.mode) {
		return slices.Sorted(maps.Keys(b.cache[b.mode])), nil
	}
	types := b.backend.Types(b.mode)
	slices.Sort(types)
	return types, nil
}

// Lost reports whether another application has taken ownership of the active
// buffer since this process last wrote to it.
//
// Deprecated: prefer the text API.
func (b *Board) Lost() (bool, error) {
	if err := b.notice("lost"); err != nil {
		return false, err
	}
	if err := b.checkInit(); err != nil {
		return false, err
	}
	return b.backend.Lost(b.mode), nil
}

// GetText returns the clipboard text. An empty clipboard yields "" and no
// error; the backend claiming text but yielding none is a backend failure.
// Usable without Init, independent of mode and cache.
func (b *Board) GetText() (string, error) {
	hasText := b.backend.HasText()
	text, err := b.backend.GetText()
	if err != nil {
		return "", fmt.Errorf("scrap: get text: %w", err)
	}
	if text == "" && hasText {
		return "", fmt.Errorf("scrap: %w", ErrTextUnavailable)
	}
	return text, nil
}

// PutText writes text to the clipboard. Usable without Init.
func (b *Board) PutText(text string) error {
	if err := b.backend.SetText(text); err != nil {
		return fmt.Errorf("scrap: put text: %w", err)
	}
	return nil
}

// HasText reports whether the clipboard currently holds text. Usable
// without Init.
func (b *Board) HasText() bool { return b.backend.HasText() }

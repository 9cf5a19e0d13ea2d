//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger scrap_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"fmt"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

const darwinPollInterval = 100 * time.Millisecond

// pasteboardBackend uses golang.design/x/clipboard for content and the
// NSPasteboard changeCount for ownership and change detection. The change
// count increments on every pasteboard write, so ownership is held exactly
// while the count still matches the one recorded after our last write.
type pasteboardBackend struct {
	initOnce  sync.Once
	initErr   error
	closeOnce sync.Once

	watchCh chan struct{}
	done    chan struct{}

	wroteChange C.NSInteger // changeCount after our last write, 0 = never
	lastChange  C.NSInteger // poll goroutine state
}

// New returns the macOS clipboard backend. clipboard.Init is deferred to
// first use so that merely constructing the backend never fails on hosts
// without a pasteboard session.
func New() Backend {
	return &pasteboardBackend{
		watchCh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (b *pasteboardBackend) Name() string { return "macOS NSPasteboard" }

func (b *pasteboardBackend) ensureInit() error {
	b.initOnce.Do(func() {
		b.initErr = clipboard.Init()
		if b.initErr == nil {
			b.lastChange = C.scrap_changeCount()
			go b.poll()
		}
	})
	return b.initErr
}

func (b *pasteboardBackend) Init() error {
	if err := b.ensureInit(); err != nil {
		return fmt.Errorf("pasteboard: %w", err)
	}
	return nil
}

// macOS has no selection buffer distinct from the pasteboard.
func (b *pasteboardBackend) SupportsSelection() bool { return false }

func (b *pasteboardBackend) poll() {
	t := time.NewTicker(darwinPollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			cc := C.scrap_changeCount()
			if cc != b.lastChange {
				b.lastChange = cc
				select {
				case b.watchCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

func (b *pasteboardBackend) Lost(Buffer) bool {
	if b.ensureInit() != nil {
		return true
	}
	if b.wroteChange == 0 {
		return true
	}
	return C.scrap_changeCount() != b.wroteChange
}

func (b *pasteboardBackend) Types(Buffer) []string {
	if b.ensureInit() != nil {
		return nil
	}
	return nativeTypes()
}

func (b *pasteboardBackend) Contains(_ Buffer, typ string) bool {
	if b.ensureInit() != nil {
		return false
	}
	return len(nativeGet(typ)) > 0
}

func (b *pasteboardBackend) Get(_ Buffer, typ string) ([]byte, error) {
	if err := b.ensureInit(); err != nil {
		return nil, err
	}
	return nativeGet(typ), nil
}

func (b *pasteboardBackend) Put(_ Buffer, typ string, data []byte) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	if err := nativePut(typ, data); err != nil {
		return err
	}
	b.wroteChange = C.scrap_changeCount()
	return nil
}

func (b *pasteboardBackend) GetText() (string, error) {
	if err := b.ensureInit(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (b *pasteboardBackend) SetText(text string) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	b.wroteChange = C.scrap_changeCount()
	return nil
}

func (b *pasteboardBackend) HasText() bool {
	if b.ensureInit() != nil {
		return false
	}
	return len(clipboard.Read(clipboard.FmtText)) > 0
}

func (b *pasteboardBackend) Watch() <-chan struct{} { return b.watchCh }

func (b *pasteboardBackend) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

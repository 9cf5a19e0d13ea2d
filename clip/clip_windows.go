//go:build windows

package clip

// #cgo LDFLAGS: -luser32
// #include <windows.h>
import "C"

import (
	"fmt"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

const windowsPollInterval = 100 * time.Millisecond

// sequenceBackend uses golang.design/x/clipboard for content and the Windows
// clipboard sequence number for ownership and change detection. The sequence
// number increments on every clipboard write, so ownership is held exactly
// while it still matches the one recorded after our last write.
type sequenceBackend struct {
	initOnce  sync.Once
	initErr   error
	closeOnce sync.Once

	watchCh chan struct{}
	done    chan struct{}

	wroteSeq C.DWORD // sequence number after our last write, 0 = never
	lastSeq  C.DWORD // poll goroutine state
}

// New returns the Windows clipboard backend.
func New() Backend {
	return &sequenceBackend{
		watchCh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (b *sequenceBackend) Name() string { return "Windows clipboard" }

func (b *sequenceBackend) ensureInit() error {
	b.initOnce.Do(func() {
		b.initErr = clipboard.Init()
		if b.initErr == nil {
			b.lastSeq = C.GetClipboardSequenceNumber()
			go b.poll()
		}
	})
	return b.initErr
}

func (b *sequenceBackend) Init() error {
	if err := b.ensureInit(); err != nil {
		return fmt.Errorf("windows clipboard: %w", err)
	}
	return nil
}

// Windows has no selection buffer distinct from the clipboard.
func (b *sequenceBackend) SupportsSelection() bool { return false }

func (b *sequenceBackend) poll() {
	t := time.NewTicker(windowsPollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			seq := C.GetClipboardSequenceNumber()
			if seq != b.lastSeq {
				b.lastSeq = seq
				select {
				case b.watchCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

func (b *sequenceBackend) Lost(Buffer) bool {
	if b.ensureInit() != nil {
		return true
	}
	if b.wroteSeq == 0 {
		return true
	}
	return C.GetClipboardSequenceNumber() != b.wroteSeq
}

func (b *sequenceBackend) Types(Buffer) []string {
	if b.ensureInit() != nil {
		return nil
	}
	return nativeTypes()
}

func (b *sequenceBackend) Contains(_ Buffer, typ string) bool {
	if b.ensureInit() != nil {
		return false
	}
	return len(nativeGet(typ)) > 0
}

func (b *sequenceBackend) Get(_ Buffer, typ string) ([]byte, error) {
	if err := b.ensureInit(); err != nil {
		return nil, err
	}
	return nativeGet(typ), nil
}

func (b *sequenceBackend) Put(_ Buffer, typ string, data []byte) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	if err := nativePut(typ, data); err != nil {
		return err
	}
	b.wroteSeq = C.GetClipboardSequenceNumber()
	return nil
}

func (b *sequenceBackend) GetText() (string, error) {
	if err := b.ensureInit(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (b *sequenceBackend) SetText(text string) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	b.wroteSeq = C.GetClipboardSequenceNumber()
	return nil
}

func (b *sequenceBackend) HasText() bool {
	if b.ensureInit() != nil {
		return false
	}
	return len(clipboard.Read(clipboard.FmtText)) > 0
}

func (b *sequenceBackend) Watch() <-chan struct{} { return b.watchCh }

func (b *sequenceBackend) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

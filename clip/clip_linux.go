//go:build linux

package clip

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

const linuxPollInterval = 250 * time.Millisecond

// lastWrite records the most recent payload this process put into a buffer.
// Ownership of that buffer is considered lost once the live content no
// longer matches it.
type lastWrite struct {
	typ  string
	data []byte
}

// x11Backend drives the clipboard buffer through golang.design/x/clipboard
// and the X11 PRIMARY selection through xclip or xsel, whichever is
// installed.
type x11Backend struct {
	selTool string // "xclip", "xsel", or "" when neither is installed

	initOnce  sync.Once
	initErr   error
	closeOnce sync.Once

	watchCh chan struct{}
	done    chan struct{}

	wrote map[Buffer]*lastWrite

	// poll goroutine state
	lastText []byte
	lastImg  []byte
}

// New returns the Linux clipboard backend, or a headless stub when the
// display environment is unavailable (a server without X11 or Wayland).
// clipboard.Init is deferred to first use so that merely constructing the
// backend never logs spurious warnings.
func New() Backend {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		slog.Warn("no display environment, clipboard unavailable")
		return newHeadless()
	}
	return &x11Backend{
		selTool: findSelTool(),
		watchCh: make(chan struct{}, 1),
		done:    make(chan struct{}),
		wrote:   make(map[Buffer]*lastWrite),
	}
}

func findSelTool() string {
	for _, tool := range []string{"xclip", "xsel"} {
		if _, err := exec.LookPath(tool); err == nil {
			return tool
		}
	}
	return ""
}

func (b *x11Backend) Name() string {
	if b.selTool != "" {
		return "X11 clipboard (poll, selection via " + b.selTool + ")"
	}
	return "X11 clipboard (poll)"
}

func (b *x11Backend) ensureInit() error {
	b.initOnce.Do(func() {
		b.initErr = clipboard.Init()
		if b.initErr == nil {
			go b.poll()
		}
	})
	return b.initErr
}

func (b *x11Backend) Init() error {
	if err := b.ensureInit(); err != nil {
		return fmt.Errorf("x11 clipboard: %w", err)
	}
	return nil
}

func (b *x11Backend) SupportsSelection() bool { return b.selTool != "" }

func (b *x11Backend) poll() {
	t := time.NewTicker(linuxPollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			text := clipboard.Read(clipboard.FmtText)
			img := clipboard.Read(clipboard.FmtImage)
			if !bytes.Equal(text, b.lastText) || !bytes.Equal(img, b.lastImg) {
				b.lastText = text
				b.lastImg = img
				select {
				case b.watchCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

func (b *x11Backend) Lost(buf Buffer) bool {
	if b.ensureInit() != nil {
		return true
	}
	w := b.wrote[buf]
	if w == nil {
		return true
	}
	cur, err := b.get(buf, w.typ)
	if err != nil {
		return true
	}
	return !bytes.Equal(cur, w.data)
}

func (b *x11Backend) Types(buf Buffer) []string {
	if b.ensureInit() != nil {
		return nil
	}
	var out []string
	for _, typ := range []string{TypeText, TypeImage} {
		if data, _ := b.get(buf, typ); len(data) > 0 {
			out = append(out, typ)
		}
	}
	return out
}

func (b *x11Backend) Contains(buf Buffer, typ string) bool {
	if b.ensureInit() != nil {
		return false
	}
	data, _ := b.get(buf, typ)
	return len(data) > 0
}

func (b *x11Backend) Get(buf Buffer, typ string) ([]byte, error) {
	if err := b.ensureInit(); err != nil {
		return nil, err
	}
	return b.get(buf, typ)
}

func (b *x11Backend) get(buf Buffer, typ string) ([]byte, error) {
	if buf == BufferSelection {
		return b.selGet(typ)
	}
	return nativeGet(typ), nil
}

func (b *x11Backend) Put(buf Buffer, typ string, data []byte) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	if buf == BufferSelection {
		if err := b.selPut(typ, data); err != nil {
			return err
		}
	} else if err := nativePut(typ, data); err != nil {
		return err
	}
	b.wrote[buf] = &lastWrite{typ: typ, data: bytes.Clone(data)}
	return nil
}

// selGet reads the PRIMARY selection. xclip and xsel exit non-zero on an
// empty selection with no portable way to tell that apart from real failure,
// so read errors are treated as absence.
func (b *x11Backend) selGet(typ string) ([]byte, error) {
	var cmd *exec.Cmd
	switch {
	case b.selTool == "xsel" && isTextType(typ):
		cmd = exec.Command("xsel", "--output", "--primary")
	case b.selTool == "xclip" && isTextType(typ):
		cmd = exec.Command("xclip", "-selection", "primary", "-o")
	case b.selTool == "xclip":
		cmd = exec.Command("xclip", "-selection", "primary", "-t", typ, "-o")
	default:
		return nil, nil // no tool, or xsel which is text-only
	}
	out, err := cmd.Output()
	if err != nil || len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (b *x11Backend) selPut(typ string, data []byte) error {
	var cmd *exec.Cmd
	switch {
	case b.selTool == "xsel" && isTextType(typ):
		cmd = exec.Command("xsel", "--input", "--primary")
	case b.selTool == "xclip" && isTextType(typ):
		cmd = exec.Command("xclip", "-selection", "primary", "-i")
	case b.selTool == "xclip":
		cmd = exec.Command("xclip", "-selection", "primary", "-t", typ, "-i")
	default:
		return fmt.Errorf("selection buffer requires xclip or xsel for %q", typ)
	}
	cmd.Stdin = bytes.NewReader(data)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", b.selTool, err)
	}
	return nil
}

func (b *x11Backend) GetText() (string, error) {
	if err := b.ensureInit(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (b *x11Backend) SetText(text string) error {
	if err := b.ensureInit(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	b.wrote[BufferClipboard] = &lastWrite{typ: TypeText, data: []byte(text)}
	return nil
}

func (b *x11Backend) HasText() bool {
	if b.ensureInit() != nil {
		return false
	}
	return len(clipboard.Read(clipboard.FmtText)) > 0
}

func (b *x11Backend) Watch() <-chan struct{} { return b.watchCh }

func (b *x11Backend) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

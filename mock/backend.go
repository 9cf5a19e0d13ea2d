package mock

import "go.klb.dev/scrap/clip"

// Compile-time interface verification.
var _ clip.Backend = (*Backend)(nil)

// Backend is a mock implementation of clip.Backend. Nil function fields fall
// back to inert defaults (init succeeds, ownership is held, nothing is
// present) so tests only wire what they assert on.
type Backend struct {
	NameFn              func() string
	InitFn              func() error
	SupportsSelectionFn func() bool
	LostFn              func(buf clip.Buffer) bool
	TypesFn             func(buf clip.Buffer) []string
	ContainsFn          func(buf clip.Buffer, typ string) bool
	GetFn               func(buf clip.Buffer, typ string) ([]byte, error)
	PutFn               func(buf clip.Buffer, typ string, data []byte) error
	GetTextFn           func() (string, error)
	SetTextFn           func(text string) error
	HasTextFn           func() bool
	WatchFn             func() <-chan struct{}

	InitCalls int
	GetCalls  int
	PutCalls  int
}

func (b *Backend) Name() string {
	if b.NameFn != nil {
		return b.NameFn()
	}
	return "mock"
}

func (b *Backend) Init() error {
	b.InitCalls++
	if b.InitFn != nil {
		return b.InitFn()
	}
	return nil
}

func (b *Backend) SupportsSelection() bool {
	if b.SupportsSelectionFn != nil {
		return b.SupportsSelectionFn()
	}
	return true
}

func (b *Backend) Lost(buf clip.Buffer) bool {
	if b.LostFn != nil {
		return b.LostFn(buf)
	}
	return false
}

func (b *Backend) Types(buf clip.Buffer) []string {
	if b.TypesFn != nil {
		return b.TypesFn(buf)
	}
	return nil
}

func (b *Backend) Contains(buf clip.Buffer, typ string) bool {
	if b.ContainsFn != nil {
		return b.ContainsFn(buf, typ)
	}
	return false
}

func (b *Backend) Get(buf clip.Buffer, typ string) ([]byte, error) {
	b.GetCalls++
	if b.GetFn != nil {
		return b.GetFn(buf, typ)
	}
	return nil, nil
}

func (b *Backend) Put(buf clip.Buffer, typ string, data []byte) error {
	b.PutCalls++
	if b.PutFn != nil {
		return b.PutFn(buf, typ, data)
	}
	return nil
}

func (b *Backend) GetText() (string, error) {
	if b.GetTextFn != nil {
		return b.GetTextFn()
	}
	return "", nil
}

func (b *Backend) SetText(text string) error {
	if b.SetTextFn != nil {
		return b.SetTextFn(text)
	}
	return nil
}

func (b *Backend) HasText() bool {
	if b.HasTextFn != nil {
		return b.HasTextFn()
	}
	return false
}

func (b *Backend) Watch() <-chan struct{} {
	if b.WatchFn != nil {
		return b.WatchFn()
	}
	return nil
}

func (b *Backend) Close() {}

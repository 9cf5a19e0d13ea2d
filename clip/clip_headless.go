package clip

// headlessBackend is a stub for environments without a display server
// (headless hosts, containers, CI). It never owns content, reports nothing
// available, and refuses writes with ErrNoDisplay.
type headlessBackend struct {
	watchCh chan struct{}
}

func newHeadless() *headlessBackend {
	return &headlessBackend{watchCh: make(chan struct{})}
}

func (b *headlessBackend) Name() string                 { return "headless (no display)" }
func (b *headlessBackend) Init() error                  { return ErrNoDisplay }
func (b *headlessBackend) SupportsSelection() bool      { return false }
func (b *headlessBackend) Lost(Buffer) bool             { return true }
func (b *headlessBackend) Types(Buffer) []string        { return nil }
func (b *headlessBackend) Contains(Buffer, string) bool { return false }

func (b *headlessBackend) Get(Buffer, string) ([]byte, error) { return nil, nil }
func (b *headlessBackend) Put(Buffer, string, []byte) error   { return ErrNoDisplay }

func (b *headlessBackend) GetText() (string, error) { return "", nil }
func (b *headlessBackend) SetText(string) error     { return ErrNoDisplay }
func (b *headlessBackend) HasText() bool            { return false }

func (b *headlessBackend) Watch() <-chan struct{} { return b.watchCh }
func (b *headlessBackend) Close()                 {}

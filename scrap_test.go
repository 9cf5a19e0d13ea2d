package scrap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/scrap"
	"go.klb.dev/scrap/clip"
	"go.klb.dev/scrap/mock"
)

// quiet suppresses the default slog deprecation warnings in tests.
func quiet() scrap.Option {
	return scrap.WithNotice(func(string) error { return nil })
}

func newBoard(t *testing.T, backend *mock.Backend, opts ...scrap.Option) *scrap.Board {
	t.Helper()
	b := scrap.New(backend, append([]scrap.Option{quiet()}, opts...)...)
	require.NoError(t, b.Init())
	return b
}

func TestInitSurfacesBackendError(t *testing.T) {
	t.Parallel()

	backend := &mock.Backend{
		InitFn: func() error { return errors.New("video system not initialized") },
	}
	b := scrap.New(backend, quiet())

	err := b.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video system not initialized")
	assert.False(t, b.IsInitialized())
}

func TestInitIdempotent(t *testing.T) {
	t.Parallel()

	backend := &mock.Backend{}
	b := newBoard(t, backend)

	require.NoError(t, b.Put("text/plain", []byte("kept")))

	// A second Init must not clear the cache populated in between.
	require.NoError(t, b.Init())
	assert.Equal(t, 1, backend.InitCalls)

	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), data)
}

func TestTypedOpsRequireInit(t *testing.T) {
	t.Parallel()

	b := scrap.New(&mock.Backend{}, quiet())

	assert.ErrorIs(t, b.SetMode(scrap.ModeSelection), scrap.ErrNotInitialized)
	assert.ErrorIs(t, b.Put("text/plain", []byte("x")), scrap.ErrNotInitialized)

	_, err := b.Get("text/plain")
	assert.ErrorIs(t, err, scrap.ErrNotInitialized)
	_, err = b.Contains("text/plain")
	assert.ErrorIs(t, err, scrap.ErrNotInitialized)
	_, err = b.Types()
	assert.ErrorIs(t, err, scrap.ErrNotInitialized)
	_, err = b.Lost()
	assert.ErrorIs(t, err, scrap.ErrNotInitialized)
}

func TestTextPathNeedsNoInit(t *testing.T) {
	t.Parallel()

	var stored string
	backend := &mock.Backend{
		GetTextFn: func() (string, error) { return stored, nil },
		SetTextFn: func(text string) error { stored = text; return nil },
		HasTextFn: func() bool { return stored != "" },
	}
	b := scrap.New(backend, quiet())
	require.False(t, b.IsInitialized())

	require.NoError(t, b.PutText("hello"))
	assert.True(t, b.HasText())

	text, err := b.GetText()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestSetMode(t *testing.T) {
	t.Parallel()

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		b := newBoard(t, &mock.Backend{})
		assert.ErrorIs(t, b.SetMode(scrap.Mode(7)), scrap.ErrInvalidMode)
		assert.Equal(t, scrap.ModeClipboard, b.Mode())
	})

	t.Run("selection honored when supported", func(t *testing.T) {
		t.Parallel()
		b := newBoard(t, &mock.Backend{})
		require.NoError(t, b.SetMode(scrap.ModeSelection))
		assert.Equal(t, scrap.ModeSelection, b.Mode())
	})

	t.Run("selection coerced without support", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{SupportsSelectionFn: func() bool { return false }}
		b := newBoard(t, backend)
		require.NoError(t, b.SetMode(scrap.ModeSelection))
		assert.Equal(t, scrap.ModeClipboard, b.Mode())
	})

	t.Run("invalid values rejected even without selection support", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{SupportsSelectionFn: func() bool { return false }}
		b := newBoard(t, backend)
		assert.ErrorIs(t, b.SetMode(scrap.Mode(-1)), scrap.ErrInvalidMode)
	})
}

func TestPutGetCoherence(t *testing.T) {
	t.Parallel()

	backend := &mock.Backend{}
	b := newBoard(t, backend)

	payload := []byte("hello")
	require.NoError(t, b.Put("text/plain", payload))

	got, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	// While ownership is held the backend is never consulted for reads.
	assert.Equal(t, 0, backend.GetCalls)

	// The cache holds private copies: mutating either slice changes nothing.
	payload[0] = 'X'
	got[1] = 'Y'
	again, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), again)
}

func TestPutSurfacesBackendError(t *testing.T) {
	t.Parallel()

	backend := &mock.Backend{
		PutFn: func(clip.Buffer, string, []byte) error {
			return errors.New("content could not be placed in clipboard")
		},
	}
	b := newBoard(t, backend)

	err := b.Put("text/plain", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content could not be placed in clipboard")

	// A failed put must not populate the cache.
	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestModeIsolation(t *testing.T) {
	t.Parallel()

	b := newBoard(t, &mock.Backend{})

	require.NoError(t, b.Put("text/plain", []byte("clipboard side")))
	require.NoError(t, b.SetMode(scrap.ModeSelection))

	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Nil(t, data, "selection cache must not see clipboard writes")

	require.NoError(t, b.Put("text/plain", []byte("selection side")))
	require.NoError(t, b.SetMode(scrap.ModeClipboard))

	data, err = b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("clipboard side"), data)
}

func TestLostOwnershipBypassesCache(t *testing.T) {
	t.Parallel()

	lost := false
	backend := &mock.Backend{
		LostFn: func(clip.Buffer) bool { return lost },
		GetFn: func(_ clip.Buffer, typ string) ([]byte, error) {
			return []byte("theirs"), nil
		},
	}
	b := newBoard(t, backend)

	require.NoError(t, b.Put("text/plain", []byte("ours")))

	lost = true
	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("theirs"), data)
	assert.Equal(t, 1, backend.GetCalls, "lost ownership must consult the backend")

	// The lost-path answer is not written back: once ownership is regained
	// the cache still holds our own last write.
	lost = false
	data, err = b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("ours"), data)
}

func TestGetAbsent(t *testing.T) {
	t.Parallel()

	t.Run("owned, never put", func(t *testing.T) {
		t.Parallel()
		b := newBoard(t, &mock.Backend{})
		data, err := b.Get("image/png")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("lost, backend empty", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{LostFn: func(clip.Buffer) bool { return true }}
		b := newBoard(t, backend)
		data, err := b.Get("image/png")
		require.NoError(t, err)
		assert.Nil(t, data)
	})
}

func TestContainsReflectsLiveState(t *testing.T) {
	t.Parallel()

	present := true
	backend := &mock.Backend{
		ContainsFn: func(_ clip.Buffer, typ string) bool { return present },
	}
	b := newBoard(t, backend)

	require.NoError(t, b.Put("text/plain", []byte("cached")))

	ok, err := b.Contains("text/plain")
	require.NoError(t, err)
	assert.True(t, ok)

	// Content cleared out-of-band: contains must say so even though the
	// cache still holds an entry.
	present = false
	ok, err = b.Contains("text/plain")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	t.Parallel()

	lost := false
	backend := &mock.Backend{
		LostFn:  func(clip.Buffer) bool { return lost },
		TypesFn: func(clip.Buffer) []string { return []string{"text/plain"} },
	}
	b := newBoard(t, backend)

	require.NoError(t, b.Put("image/png", []byte{1}))
	require.NoError(t, b.Put("text/plain", []byte("x")))

	types, err := b.Types()
	require.NoError(t, err)
	assert.Equal(t, []string{"image/png", "text/plain"}, types)

	lost = true
	types, err = b.Types()
	require.NoError(t, err)
	assert.Equal(t, []string{"text/plain"}, types)
}

func TestLost(t *testing.T) {
	t.Parallel()

	lost := false
	b := newBoard(t, &mock.Backend{LostFn: func(clip.Buffer) bool { return lost }})

	got, err := b.Lost()
	require.NoError(t, err)
	assert.False(t, got)

	lost = true
	got, err = b.Lost()
	require.NoError(t, err)
	assert.True(t, got)
}

func TestGetTextEmptyVsError(t *testing.T) {
	t.Parallel()

	t.Run("empty clipboard is not an error", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{
			HasTextFn: func() bool { return false },
			GetTextFn: func() (string, error) { return "", nil },
		}
		b := scrap.New(backend, quiet())
		text, err := b.GetText()
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("has text but none readable is an error", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{
			HasTextFn: func() bool { return true },
			GetTextFn: func() (string, error) { return "", nil },
		}
		b := scrap.New(backend, quiet())
		_, err := b.GetText()
		assert.ErrorIs(t, err, scrap.ErrTextUnavailable)
	})

	t.Run("backend error text survives", func(t *testing.T) {
		t.Parallel()
		backend := &mock.Backend{
			GetTextFn: func() (string, error) { return "", errors.New("pasteboard busy") },
		}
		b := scrap.New(backend, quiet())
		_, err := b.GetText()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pasteboard busy")
	})
}

func TestPutTextSurfacesBackendError(t *testing.T) {
	t.Parallel()

	backend := &mock.Backend{
		SetTextFn: func(string) error { return errors.New("denied") },
	}
	b := scrap.New(backend, quiet())

	err := b.PutText("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestNoticeSink(t *testing.T) {
	t.Parallel()

	t.Run("every typed op reports itself", func(t *testing.T) {
		t.Parallel()
		var ops []string
		backend := &mock.Backend{}
		b := scrap.New(backend, scrap.WithNotice(func(op string) error {
			ops = append(ops, op)
			return nil
		}))
		require.NoError(t, b.Init())
		require.NoError(t, b.SetMode(scrap.ModeClipboard))
		require.NoError(t, b.Put("text/plain", []byte("x")))
		_, _ = b.Get("text/plain")
		_, _ = b.Contains("text/plain")
		_, _ = b.Types()
		_, _ = b.Lost()

		assert.Equal(t,
			[]string{"init", "set_mode", "put", "get", "contains", "get_types", "lost"},
			ops)
	})

	t.Run("text API emits no notices", func(t *testing.T) {
		t.Parallel()
		b := scrap.New(&mock.Backend{}, scrap.WithNotice(func(op string) error {
			t.Errorf("unexpected notice for %s", op)
			return nil
		}))
		require.NoError(t, b.PutText("x"))
		_, _ = b.GetText()
		_ = b.HasText()
		_ = b.IsInitialized()
	})

	t.Run("escalated notice aborts the call", func(t *testing.T) {
		t.Parallel()
		escalate := errors.New("DeprecationWarning escalated")
		backend := &mock.Backend{}
		b := scrap.New(backend, scrap.WithNotice(func(string) error { return escalate }))

		assert.ErrorIs(t, b.Init(), escalate)
		assert.Zero(t, backend.InitCalls, "aborted init must not reach the backend")
	})
}

func TestNoticeAbortsBeforeBackend(t *testing.T) {
	t.Parallel()

	escalate := errors.New("warnings are errors here")
	backend := &mock.Backend{}
	b := scrap.New(backend, scrap.WithNotice(func(op string) error {
		if op == "put" {
			return escalate
		}
		return nil
	}))
	require.NoError(t, b.Init())

	err := b.Put("text/plain", []byte("x"))
	assert.ErrorIs(t, err, escalate)
	assert.Zero(t, backend.PutCalls, "aborted put must not reach the backend")

	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Nil(t, data, "aborted put must not populate the cache")
}

func TestClipboardScenario(t *testing.T) {
	t.Parallel()

	b := newBoard(t, &mock.Backend{})
	require.NoError(t, b.SetMode(scrap.ModeClipboard))
	require.NoError(t, b.Put("text/plain", []byte("hello")))

	data, err := b.Get("text/plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

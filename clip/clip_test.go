package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTextType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  string
		want bool
	}{
		{"text/plain", true},
		{"text/plain;charset=utf-8", true},
		{"text/plainsong", false},
		{"text/html", false},
		{"image/png", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isTextType(tt.typ), tt.typ)
	}
}

func TestBufferString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clipboard", BufferClipboard.String())
	assert.Equal(t, "selection", BufferSelection.String())
	assert.Equal(t, "unknown", Buffer(42).String())
}

func TestHeadlessBackend(t *testing.T) {
	t.Parallel()

	b := newHeadless()
	defer b.Close()

	require.ErrorIs(t, b.Init(), ErrNoDisplay)
	assert.False(t, b.SupportsSelection())
	assert.True(t, b.Lost(BufferClipboard))
	assert.Nil(t, b.Types(BufferClipboard))
	assert.False(t, b.Contains(BufferClipboard, TypeText))

	data, err := b.Get(BufferClipboard, TypeText)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.ErrorIs(t, b.Put(BufferClipboard, TypeText, []byte("x")), ErrNoDisplay)
	require.ErrorIs(t, b.SetText("x"), ErrNoDisplay)

	text, err := b.GetText()
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.False(t, b.HasText())

	select {
	case <-b.Watch():
		t.Fatal("headless backend must never signal changes")
	default:
	}
}

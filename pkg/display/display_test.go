package display

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessAcceptsFrames(t *testing.T) {
	h := NewHeadless(2, 1)
	w, ht := h.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, ht)

	require.NoError(t, h.UpdateFrame([]byte{1, 2, 3, 0, 4, 5, 6, 0}))
	assert.Equal(t, uint64(1), h.FrameCount())

	img := h.Snapshot()
	assert.Equal(t, []byte{1, 2, 3, 0xff, 4, 5, 6, 0xff}, img.Pix)

	err := h.UpdateFrame([]byte{1, 2, 3})
	var fe *FrameError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 8, fe.Want)
	assert.Equal(t, uint64(1), h.FrameCount())
}

func TestWritePNG(t *testing.T) {
	img := FrameImage([]byte{10, 20, 30, 0}, 1, 1)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, a := decoded.At(0, 0).RGBA()
	assert.Equal(t, []uint32{10 * 0x101, 20 * 0x101, 30 * 0x101, 0xffff}, []uint32{r, g, b, a})
}

func TestQueueKeepsOrderAndDropsOldest(t *testing.T) {
	q := NewQueue(2)
	q.Push(Event{Kind: EventKeyDown, Key: "A"})
	q.Push(Event{Kind: EventKeyDown, Key: "B"})
	q.Push(Event{Kind: EventQuit})

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []Event{{Kind: EventKeyDown, Key: "B"}, {Kind: EventQuit}}, q.Drain())
	assert.Empty(t, q.Drain())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "quit", EventQuit.String())
	assert.Equal(t, "keydown", EventKeyDown.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}

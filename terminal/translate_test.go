package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy/input"
)

func TestTranslateMouseSequence(t *testing.T) {
	tr := NewTranslator(8, 16, false)

	steps := []struct {
		buttons tcell.ButtonMask
		want    input.EventType
	}{
		{tcell.ButtonNone, input.EventPointerMove},
		{tcell.Button1, input.EventPointerDown},
		{tcell.Button1, input.EventPointerMove},
		{tcell.ButtonNone, input.EventPointerUp},
		{tcell.ButtonNone, input.EventPointerMove},
	}
	for i, s := range steps {
		ev, ok := tr.Translate(tcell.NewEventMouse(3, 2, s.buttons, tcell.ModNone))
		require.True(t, ok)
		assert.Equal(t, s.want, ev.Type, "step %d", i)
	}
}

func TestTranslateMouseCellCenter(t *testing.T) {
	tr := NewTranslator(8, 16, false)
	ev, ok := tr.Translate(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, 28.0, ev.X)
	assert.Equal(t, 40.0, ev.Y)
	assert.False(t, ev.Time.IsZero())
}

func TestTranslateWheel(t *testing.T) {
	tr := NewTranslator(8, 16, false)

	ev, ok := tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.EventWheel, ev.Type)
	assert.Negative(t, ev.DeltaY, "wheel up zooms in")

	ev, _ = tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	assert.Positive(t, ev.DeltaY)
}

func TestTranslateKeys(t *testing.T) {
	tr := NewTranslator(8, 16, false)

	cases := []struct {
		key  tcell.Key
		ch   rune
		want input.Key
	}{
		{tcell.KeyRight, 0, input.KeyRight},
		{tcell.KeyEnter, 0, input.KeyEnter},
		{tcell.KeyTab, 0, input.KeyTab},
		{tcell.KeyBacktab, 0, input.KeyBacktab},
		{tcell.KeyEscape, 0, input.KeyEscape},
		{tcell.KeyCtrlC, 0, input.KeyQuit},
		{tcell.KeyRune, ' ', input.KeySpace},
		{tcell.KeyRune, 'j', input.KeyDown},
		{tcell.KeyRune, '+', input.KeyZoomIn},
		{tcell.KeyRune, '-', input.KeyZoomOut},
		{tcell.KeyRune, '0', input.KeyResetView},
		{tcell.KeyRune, 't', input.KeyTour},
		{tcell.KeyRune, 'q', input.KeyQuit},
	}
	for _, c := range cases {
		ev, ok := tr.Translate(tcell.NewEventKey(c.key, c.ch, tcell.ModNone))
		require.True(t, ok, "key %v rune %q", c.key, c.ch)
		assert.Equal(t, input.EventKey, ev.Type)
		assert.Equal(t, c.want, ev.Key, "key %v rune %q", c.key, c.ch)
	}

	_, ok := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
}

func TestTranslateResizeToPixels(t *testing.T) {
	tr := NewTranslator(8, 16, false)
	ev, ok := tr.Translate(tcell.NewEventResize(100, 40))
	require.True(t, ok)
	assert.Equal(t, input.EventResize, ev.Type)
	assert.Equal(t, 800.0, ev.Width)
	assert.Equal(t, 640.0, ev.Height)
}

func TestTranslateFocus(t *testing.T) {
	pausing := NewTranslator(8, 16, true)
	ev, ok := pausing.Translate(tcell.NewEventFocus(false))
	require.True(t, ok)
	assert.Equal(t, input.EventVisibility, ev.Type)
	assert.False(t, ev.Visible)

	ev, ok = pausing.Translate(tcell.NewEventFocus(true))
	require.True(t, ok)
	assert.True(t, ev.Visible)

	plain := NewTranslator(8, 16, false)
	plain.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	ev, ok = plain.Translate(tcell.NewEventFocus(false))
	require.True(t, ok)
	assert.Equal(t, input.EventPointerLeave, ev.Type)

	// Blur released the button, so the next press is a fresh down
	ev, _ = plain.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, input.EventPointerDown, ev.Type)

	_, ok = plain.Translate(tcell.NewEventFocus(true))
	assert.False(t, ok)
}

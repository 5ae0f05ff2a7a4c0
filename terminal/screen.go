package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy/core"
	"github.com/lixenwraith/galaxy/input"
	"github.com/lixenwraith/galaxy/parameter"
)

// Screen owns the tcell screen and feeds translated events to a view
type Screen struct {
	tcell.Screen
	*Translator

	finiOnce sync.Once
}

// Option configures a Screen
type Option func(*Screen)

// WithCellSize sets the pixel size of one cell
func WithCellSize(w, h float64) Option {
	return func(s *Screen) {
		if w > 0 && h > 0 {
			s.CellW, s.CellH = w, h
		}
	}
}

// WithPauseOnBlur maps focus loss to hidden
func WithPauseOnBlur(on bool) Option {
	return func(s *Screen) {
		s.PauseOnBlur = on
	}
}

// NewScreen opens the controlling terminal
func NewScreen(opts ...Option) (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return Open(sc, opts...)
}

// Open initializes sc with mouse and focus reporting
// The terminal is restored on Close or when a crash is handled
func Open(sc tcell.Screen, opts ...Option) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s := &Screen{
		Screen:     sc,
		Translator: NewTranslator(parameter.CellWidth, parameter.CellHeight, false),
	}
	for _, opt := range opts {
		opt(s)
	}

	sc.EnableMouse(tcell.MouseMotionEvents)
	sc.EnableFocus()
	sc.HideCursor()
	sc.Clear()

	core.OnCrash(s.Close)
	return s, nil
}

// Viewport returns the screen size in layout pixels
func (s *Screen) Viewport() (float64, float64) {
	w, h := s.Size()
	return float64(w) * s.CellW, float64(h) * s.CellH
}

// Close restores the terminal; safe to call repeatedly
func (s *Screen) Close() {
	s.finiOnce.Do(s.Fini)
}

// Pump forwards events to post until the screen closes or post refuses
// Cancelling ctx closes the screen so the blocking poll returns
func (s *Screen) Pump(ctx context.Context, post func(input.Event) bool) error {
	stop := context.AfterFunc(ctx, s.Close)
	defer stop()

	for {
		ev := s.PollEvent()
		if ev == nil {
			return ctx.Err()
		}
		in, ok := s.Translate(ev)
		if !ok {
			continue
		}
		if !post(in) {
			return nil
		}
	}
}

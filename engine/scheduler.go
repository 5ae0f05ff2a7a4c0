package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/galaxy/core"
	"github.com/lixenwraith/galaxy/input"
	"github.com/lixenwraith/galaxy/parameter"
)

// ErrSchedulerStopped is returned by Start after Stop
var ErrSchedulerStopped = errors.New("scheduler stopped")

// message is one unit of work for the loop: an input event or a closure over the view
type message struct {
	ev input.Event
	fn func(*View)
}

// Scheduler runs the single frame loop of one view
// All view mutation happens on the loop goroutine; other goroutines communicate through Post and Do
// The loop parks (stops ticking) when the view needs no frames and re-arms on any event or wake
type Scheduler struct {
	view     *View
	interval time.Duration
	log      zerolog.Logger

	registry *Registry
	key      string

	inbox  chan message
	wakeCh chan struct{}

	quitCh   chan struct{}
	quitOnce sync.Once

	// Control channels; life serializes Start and Stop
	life     sync.Mutex
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	armed  atomic.Bool
	frames atomic.Uint64
	parks  atomic.Uint64
}

// SchedulerOption configures a scheduler
type SchedulerOption func(*Scheduler)

// WithFrameInterval overrides the configured frame interval
func WithFrameInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRegistry claims key in r on Start and releases it on Stop
func WithRegistry(r *Registry, key string) SchedulerOption {
	return func(s *Scheduler) {
		s.registry = r
		s.key = key
	}
}

// WithSchedulerLogger sets the loop logger
func WithSchedulerLogger(l zerolog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.log = l
	}
}

// NewScheduler binds a frame loop to v and installs itself as the view's waker
func NewScheduler(v *View, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		view:     v,
		interval: v.cfg.Engine.FrameInterval.Duration,
		log:      zerolog.Nop(),
		inbox:    make(chan message, parameter.EventQueueSize),
		wakeCh:   make(chan struct{}, 1),
		quitCh:   make(chan struct{}),
		stopChan: make(chan struct{}),
	}
	if s.interval <= 0 {
		s.interval = parameter.FrameInterval
	}
	for _, opt := range opts {
		opt(s)
	}
	v.SetWaker(s)
	return s
}

// Start claims the view's dataset and begins the loop
// A stopped scheduler cannot be restarted
func (s *Scheduler) Start() error {
	s.life.Lock()
	defer s.life.Unlock()
	if s.stopped {
		return ErrSchedulerStopped
	}
	if s.running.Load() {
		return nil
	}
	if s.registry != nil {
		if err := s.registry.Claim(s.key, s.view.ID()); err != nil {
			return err
		}
	}
	s.running.Store(true)
	s.wg.Add(1)
	core.Go(s.loop)
	return nil
}

// Stop halts the loop and releases the dataset claim
func (s *Scheduler) Stop() {
	s.life.Lock()
	defer s.life.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stopChan)
	if s.running.CompareAndSwap(true, false) {
		s.wg.Wait()
		if s.registry != nil {
			s.registry.Release(s.key, s.view.ID())
		}
	}
}

// Post queues an input event, blocking while the inbox is full
// Returns false once the scheduler has stopped
func (s *Scheduler) Post(ev input.Event) bool {
	return s.send(message{ev: ev})
}

// Do runs fn on the loop goroutine
func (s *Scheduler) Do(fn func(*View)) bool {
	return s.send(message{fn: fn})
}

func (s *Scheduler) send(m message) bool {
	select {
	case <-s.stopChan:
		return false
	default:
	}
	select {
	case s.inbox <- m:
		return true
	case <-s.stopChan:
		return false
	}
}

// Wake re-arms a parked loop, safe from any goroutine
func (s *Scheduler) Wake() {
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// SetVisible forwards a page visibility change
func (s *Scheduler) SetVisible(visible bool) bool {
	return s.Post(input.Event{Type: input.EventVisibility, Visible: visible})
}

// SetActive forwards a view activation change
func (s *Scheduler) SetActive(active bool) bool {
	return s.Do(func(v *View) { v.SetActive(active) })
}

// Quit is closed when the view produces a quit intent
func (s *Scheduler) Quit() <-chan struct{} {
	return s.quitCh
}

// Armed reports whether the loop is currently ticking
func (s *Scheduler) Armed() bool {
	return s.armed.Load()
}

// Frames returns frames rendered by this loop
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// Parks returns how many times the loop has parked
func (s *Scheduler) Parks() uint64 {
	return s.parks.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	poll := time.NewTimer(parameter.ParkedPollInterval)
	defer poll.Stop()

	s.armed.Store(true)
	s.view.obs.LoopArmed()

	for {
		var tick, recheck <-chan time.Time
		if s.armed.Load() {
			tick = ticker.C
		} else {
			// Parked: wait for input, a wake, or a slow poll that notices external changes
			poll.Reset(parameter.ParkedPollInterval)
			recheck = poll.C
		}

		select {
		case <-s.stopChan:
			return
		case m := <-s.inbox:
			s.dispatch(m)
		case <-s.wakeCh:
		case <-tick:
			if s.view.Frame(s.view.clock.Now()) {
				s.frames.Add(1)
			}
		case <-recheck:
		}

		if s.updateArmed() {
			ticker.Reset(s.interval)
		}
	}
}

func (s *Scheduler) dispatch(m message) {
	if m.fn != nil {
		m.fn(s.view)
		return
	}
	if it := s.view.Handle(m.ev); it.Type == input.IntentQuit {
		s.quitOnce.Do(func() {
			s.log.Debug().Msg("quit requested")
			close(s.quitCh)
		})
	}
}

// updateArmed parks or re-arms the loop and reports a re-arm
func (s *Scheduler) updateArmed() bool {
	reason := s.view.ParkReason()
	armed := s.armed.Load()
	switch {
	case reason == ParkNone && !armed:
		s.armed.Store(true)
		s.view.obs.LoopArmed()
		s.log.Debug().Msg("frame loop armed")
		return true
	case reason != ParkNone && armed:
		s.armed.Store(false)
		s.parks.Add(1)
		s.view.obs.LoopParked(reason)
		s.log.Debug().Str("reason", string(reason)).Uint64("frames", s.frames.Load()).Msg("frame loop parked")
	}
	return false
}

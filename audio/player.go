package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/galaxy/parameter"
)

// cue identifies a rate-limited sound
type cue int

const (
	cueBell cue = iota
	cueWhoosh
	cueCount
)

// Player plays view cues through the system speaker
// A disabled or unstarted player drops every cue
type Player struct {
	mu      sync.Mutex
	cfg     *Config
	mixer   *beep.Mixer
	play    func(beep.Streamer)
	now     func() time.Time
	lastCue [cueCount]time.Time
}

// NewPlayer creates a player; call Start to open the speaker
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Start initializes the speaker and begins streaming the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.play != nil {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return nil
}

// Close silences pending cues and stops accepting new ones
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.play == nil {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.play = nil
}

// Bell implements engine.Cues
func (p *Player) Bell() {
	p.trigger(cueBell, BellSound)
}

// Whoosh implements engine.Cues
func (p *Player) Whoosh() {
	p.trigger(cueWhoosh, WhooshSound)
}

func (p *Player) trigger(c cue, build func(*Config) beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.play == nil {
		return
	}
	now := p.now()
	if now.Sub(p.lastCue[c]) < parameter.MinSoundGap {
		return
	}
	p.lastCue[c] = now
	p.play(build(p.cfg))
}

package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/parameter"
)

// Engine plays sound cues through the system speaker
// Every method is safe before Init and after Close; audio is optional
type Engine struct {
	mu     sync.Mutex
	config *AudioConfig
	logger *zap.Logger

	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time

	muted atomic.Bool
}

// NewEngine creates an idle engine; Init opens the speaker
func NewEngine(cfg *AudioConfig, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		config: cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Init opens the speaker. On failure the engine stays usable but silent
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || !e.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(e.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		e.muted.Store(true)
		e.logger.Warn("audio disabled", zap.Error(err))
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(e.mixer)
	e.sink = func(s beep.Streamer) {
		speaker.Lock()
		e.mixer.Add(s)
		speaker.Unlock()
	}
	e.initialized = true
	e.logger.Debug("audio ready", zap.Int("sample_rate", e.config.SampleRate))
	return nil
}

// Play queues a cue; returns false when muted, uninitialized or rate limited
func (e *Engine) Play(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount || e.muted.Load() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.sink == nil {
		return false
	}

	now := e.now()
	if last := e.lastPlayed[st]; !last.IsZero() && now.Sub(last) < e.config.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, e.config)
	if streamer == nil {
		return false
	}
	e.lastPlayed[st] = now
	e.sink(streamer)
	return true
}

// PlayAll queues each cue in order and returns how many were queued
func (e *Engine) PlayAll(cues []core.SoundType) int {
	played := 0
	for _, st := range cues {
		if e.Play(st) {
			played++
		}
	}
	return played
}

// SetMuted toggles output without releasing the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// IsMuted reports whether cues are being dropped
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// Close stops all sounds and releases the speaker
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	e.sink = nil
	e.initialized = false
}

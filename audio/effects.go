package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency slides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	rate       beep.SampleRate
}

// NewSweep creates a pitch glide between two frequencies
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: start, end: end, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePushSound generates a short wooden click for a player push
func CreatePushSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(220.0, parameter.PushSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, parameter.PushSoundDuration, parameter.PushSoundAttack, parameter.PushSoundRelease, rate)

	tick := NewOscillator(0, parameter.PushSoundDuration, WaveNoise, rate)
	tickShaped := NewEnvelope(tick, parameter.PushSoundDuration, 0, parameter.PushSoundDuration, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(tickShaped, 0.4),
	)

	vol := cfg.EffectVolumes[core.SoundPush] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateWhooshSound generates a rising airy glide for funnel transport
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.WhooshSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	glide := NewSweep(180.0, 420.0, parameter.WhooshSoundDuration, rate)
	glideShaped := NewEnvelope(glide, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.7),
		newVolume(glideShaped, 0.3),
	)

	vol := cfg.EffectVolumes[core.SoundWhoosh] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateBlockedSound generates a low harsh buzz for a vetoed move
func CreateBlockedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.BlockedSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.BlockedSoundDuration, parameter.BlockedSoundAttack, parameter.BlockedSoundRelease, rate)

	vol := cfg.EffectVolumes[core.SoundBlocked] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateUndoSound generates a descending two-note figure
func CreateUndoSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5
	n1 := NewOscillator(659.25, parameter.UndoSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.UndoSoundNote1Duration, parameter.UndoSoundAttack, parameter.UndoSoundNote1Release, rate)

	// A4
	n2 := NewOscillator(440.0, parameter.UndoSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.UndoSoundNote2Duration, parameter.UndoSoundAttack, parameter.UndoSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[core.SoundUndo] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// GetSoundEffect returns the streamer for the given cue, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundPush:
		return CreatePushSound(cfg)
	case core.SoundWhoosh:
		return CreateWhooshSound(cfg)
	case core.SoundBlocked:
		return CreateBlockedSound(cfg)
	case core.SoundUndo:
		return CreateUndoSound(cfg)
	default:
		return nil
	}
}

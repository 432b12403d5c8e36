package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
	MinSoundGap   time.Duration
}

// DefaultAudioConfig returns audio settings used when the environment sets nothing
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundPush:    0.6,
			core.SoundWhoosh:  0.4,
			core.SoundBlocked: 0.5,
			core.SoundUndo:    0.6,
		},
		SampleRate:  parameter.AudioSampleRate,
		MinSoundGap: parameter.MinSoundGap,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("WRAPBOX_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("WRAPBOX_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Per-cue volumes as JSON, e.g. {"push":0.8,"undo":0.3}
	if effectVols := os.Getenv("WRAPBOX_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := soundByName[name]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("WRAPBOX_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

var soundByName = map[string]core.SoundType{
	"push":    core.SoundPush,
	"whoosh":  core.SoundWhoosh,
	"blocked": core.SoundBlocked,
	"undo":    core.SoundUndo,
}

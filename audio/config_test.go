package audio

import (
	"testing"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/parameter"
)

// TestDefaultAudioConfig verifies defaults cover every cue
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if v, ok := cfg.EffectVolumes[st]; !ok || v <= 0 {
			t.Errorf("Expected positive default volume for sound %d, got %v", st, v)
		}
	}
}

// TestLoadAudioConfigFromEnv verifies environment overrides
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("WRAPBOX_AUDIO_ENABLED", "false")
	t.Setenv("WRAPBOX_MASTER_VOLUME", "25")
	t.Setenv("WRAPBOX_SFX_VOLUMES", `{"push":0.9,"undo":0.1,"bogus":1}`)
	t.Setenv("WRAPBOX_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %v", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundPush] != 0.9 {
		t.Errorf("Expected push volume 0.9, got %v", cfg.EffectVolumes[core.SoundPush])
	}
	if cfg.EffectVolumes[core.SoundUndo] != 0.1 {
		t.Errorf("Expected undo volume 0.1, got %v", cfg.EffectVolumes[core.SoundUndo])
	}
	if cfg.EffectVolumes[core.SoundWhoosh] != DefaultAudioConfig().EffectVolumes[core.SoundWhoosh] {
		t.Error("Expected whoosh volume untouched")
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigClampsAndIgnoresGarbage verifies invalid values fall back to defaults
func TestLoadAudioConfigClampsAndIgnoresGarbage(t *testing.T) {
	t.Setenv("WRAPBOX_AUDIO_ENABLED", "perhaps")
	t.Setenv("WRAPBOX_MASTER_VOLUME", "250")
	t.Setenv("WRAPBOX_SFX_VOLUMES", "{not json")
	t.Setenv("WRAPBOX_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Expected unparsable enabled flag to be ignored")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %v", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundPush] != def.EffectVolumes[core.SoundPush] {
		t.Error("Expected malformed volume JSON to be ignored")
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}

	t.Setenv("WRAPBOX_MASTER_VOLUME", "-5")
	if v := LoadAudioConfig().MasterVolume; v != 0 {
		t.Errorf("Expected master volume clamped to 0, got %v", v)
	}
}

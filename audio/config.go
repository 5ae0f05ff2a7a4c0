package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/galaxy/parameter"
)

// Config controls the cue player
type Config struct {
	Enabled      bool
	MasterVolume float64
	BellVolume   float64
	WhooshVolume float64
	SampleRate   int
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		BellVolume:   0.6,
		WhooshVolume: 0.4,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadConfig applies GALAXY_AUDIO_ENABLED and GALAXY_MASTER_VOLUME (0-100) over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("GALAXY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("GALAXY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}

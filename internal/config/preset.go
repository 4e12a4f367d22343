package config

import "fmt"

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// Presets lists the available speed presets from slowest to fastest.
func Presets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}
}

// ParseSpeedPreset validates a preset name. An empty name means no preset.
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown speed preset %q (want slow, normal or fast)", ErrInvalid, name)
}

// ApplyPreset modifies the timing based on a speed preset.
// An empty preset leaves the configuration unchanged.
func ApplyPreset(cfg *Config, preset SpeedPreset) {
	switch preset {
	case SpeedSlow:
		cfg.Timing.TickMS = 800
		cfg.Timing.SpawnEvery = 12
	case SpeedNormal:
		cfg.Timing.TickMS = 500
		cfg.Timing.SpawnEvery = 10
	case SpeedFast:
		cfg.Timing.TickMS = 250
		cfg.Timing.SpawnEvery = 8
	}
}

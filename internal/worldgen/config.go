package worldgen

import "strconv"

// Settings are the caller-supplied density and coverage knobs. Each value
// is interpreted on [0, 1].
type Settings struct {
	RiverDensity   float64 `json:"river_density"`
	CityDensity    float64 `json:"city_density"`
	LandPercentage float64 `json:"land_percentage"`
}

// DefaultSettings returns the standard medium-density configuration:
// 40% land, medium rivers and cities.
func DefaultSettings() Settings {
	return Settings{
		RiverDensity:   0.5,
		CityDensity:    0.5,
		LandPercentage: 0.4,
	}
}

// Clamp returns a copy with every field clamped to [0, 1].
func (s Settings) Clamp() Settings {
	s.RiverDensity = clamp01(s.RiverDensity)
	s.CityDensity = clamp01(s.CityDensity)
	s.LandPercentage = clamp01(s.LandPercentage)
	return s
}

// FromMap populates settings from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	if v, ok := cfg["rivers"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.RiverDensity = parsed
		}
	}
	if v, ok := cfg["cities"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.CityDensity = parsed
		}
	}
	if v, ok := cfg["land"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			s.LandPercentage = parsed
		}
	}
	return s.Clamp()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

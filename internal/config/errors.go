package config

import "errors"

var (
	// ErrParse indicates a config file that is not valid YAML for Config.
	ErrParse = errors.New("config: malformed file")

	// ErrMultiplier indicates a velocity multiplier that is not positive.
	ErrMultiplier = errors.New("config: velocity multiplier must be positive")

	// ErrReplicas indicates a negative replica count.
	ErrReplicas = errors.New("config: replicas must not be negative")

	// ErrDirection indicates a direction other than forward or reverse.
	ErrDirection = errors.New("config: unknown direction")

	// ErrCanvas indicates a canvas too small to draw on.
	ErrCanvas = errors.New("config: canvas too small")

	// ErrViewport indicates a drawing surface without area.
	ErrViewport = errors.New("config: viewport must have positive size")

	// ErrHistory indicates too few chart samples.
	ErrHistory = errors.New("config: history needs at least 2 samples")

	// ErrTheme indicates a theme name with no built-in palette.
	ErrTheme = errors.New("config: unknown theme")

	// ErrUnknownPreset is returned for a preset name not in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

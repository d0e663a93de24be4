package config

import (
	_ "embed"
)

//go:embed defaults/blank.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      1024,
			Height:     768,
			Title:      "SDL2 game blank",
			ClearColor: ColorConfig{R: 210, G: 255, B: 179, A: 255},
		},
		Loop: LoopConfig{
			TargetFPS: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

//go:build !js

package main

import (
	// Desktop-only backends
	_ "github.com/vovakirdan/blank/internal/platform/sdlhost"
	_ "github.com/vovakirdan/blank/internal/platform/tui"
)

// defaultBackend is used when no backend is configured.
const defaultBackend = "sdl"

//go:build js

package main

// defaultBackend is used when no backend is configured. In the browser only
// ebiten can host the frame loop.
const defaultBackend = "ebiten"

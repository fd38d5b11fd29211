// Package debug provides signal-validity checks for synthesis development.
//
// Rendered buffers can silently pick up NaN or infinite samples from bad
// parameter combinations long before anything audible goes wrong. The
// checks in this package panic at the first invalid sample, naming the
// signal that produced it. They are only active when building with the
// 'debug' build tag.
//
// Usage:
//
//	// Build with checks enabled
//	go build -tags debug
//
//	// In rendering code
//	func render() []float64 {
//	    out := voice.Render()
//	    debug.CheckSignal(out, "voice")
//	    debug.CheckRange(out, -1, 1, "voice")
//	    return out
//	}
//
// When building without the 'debug' tag, all functions become no-ops with
// zero overhead.
package debug

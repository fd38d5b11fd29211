//go:build !debug
// +build !debug

package debug

// Enable is a no-op when not in debug mode.
func Enable() {}

// Disable is a no-op when not in debug mode.
func Disable() {}

// ResetStats is a no-op when not in debug mode.
func ResetStats() {}

// Stats returns zeros when not in debug mode.
func Stats() (buffers, samples uint64) {
	return 0, 0
}

// CheckSignal is a no-op when not in debug mode.
func CheckSignal(buf []float64, name string) {}

// CheckRange is a no-op when not in debug mode.
func CheckRange(buf []float64, lo, hi float64, name string) {}

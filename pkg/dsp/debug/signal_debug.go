//go:build debug
// +build debug

package debug

import (
	"fmt"
	"math"
	"sync/atomic"
)

var (
	enabled       atomic.Bool
	checkedSums   atomic.Uint64
	checkedCounts atomic.Uint64
)

// Enable turns the signal checks on.
func Enable() { enabled.Store(true) }

// Disable turns the signal checks off.
func Disable() { enabled.Store(false) }

// ResetStats clears the check counters.
func ResetStats() {
	checkedSums.Store(0)
	checkedCounts.Store(0)
}

// Stats returns how many buffers and samples have been checked.
func Stats() (buffers, samples uint64) {
	return checkedCounts.Load(), checkedSums.Load()
}

// CheckSignal panics at the first NaN or infinite sample in buf.
func CheckSignal(buf []float64, name string) {
	if !enabled.Load() {
		return
	}
	for i, v := range buf {
		if math.IsNaN(v) {
			panic(fmt.Sprintf("signal %s: sample %d is NaN", name, i))
		}
		if math.IsInf(v, 0) {
			panic(fmt.Sprintf("signal %s: sample %d is infinite", name, i))
		}
	}
	checkedCounts.Add(1)
	checkedSums.Add(uint64(len(buf)))
}

// CheckRange panics at the first sample of buf outside [lo, hi].
func CheckRange(buf []float64, lo, hi float64, name string) {
	if !enabled.Load() {
		return
	}
	for i, v := range buf {
		if v < lo || v > hi || math.IsNaN(v) {
			panic(fmt.Sprintf("signal %s: sample %d = %v outside [%v, %v]",
				name, i, v, lo, hi))
		}
	}
	checkedCounts.Add(1)
	checkedSums.Add(uint64(len(buf)))
}

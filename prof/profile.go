// Package prof collects coarse wall-clock timings for the analysis tooling.
package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Microseconds extracts the measurements recorded under label, in order, as
// microsecond values.
func Microseconds(entries []Entry, label string) []float64 {
	var out []float64
	for _, e := range entries {
		if e.Label == label {
			out = append(out, float64(e.Dur)/float64(time.Microsecond))
		}
	}
	return out
}

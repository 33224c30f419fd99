package subtitle

import (
	"errors"
	"fmt"
)

// Entry is a single timestamped subtitle cue. Times are in seconds
// from the start of the video.
type Entry struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the display time of the cue in seconds.
func (e Entry) Duration() float64 {
	return e.End - e.Start
}

var ErrMalformedEntry = errors.New("subtitle entry end time must be after start time")

// Validate checks the timing invariant on every entry.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.End <= e.Start {
			return fmt.Errorf("entry %d (%.3f --> %.3f): %w", i, e.Start, e.End, ErrMalformedEntry)
		}
	}
	return nil
}

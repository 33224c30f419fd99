package director

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/subtitle"
)

var ErrEmptyInput = errors.New("input sequence is empty")

// Segmenter groups subtitle entries into scenes using duration and
// sentence-boundary heuristics.
type Segmenter struct {
	MinDuration float64 // Minimum scene length before a sentence end may close it (seconds)
	MaxDuration float64 // Hard ceiling forcing a scene close (seconds)
}

// NewSegmenter creates a Segmenter with the default 10-20 second window.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		MinDuration: 10.0,
		MaxDuration: 20.0,
	}
}

// Segment walks the chronologically ordered entries once and emits
// scenes covering the full input span. A scene closes when its entry
// ends a sentence and the minimum duration is met, when the maximum
// duration is reached, or at the end of input. Transition vocabulary
// never closes a scene; it only influences transition selection later.
func (s *Segmenter) Segment(entries []subtitle.Entry) ([]Scene, error) {
	if s.MinDuration < 0 || s.MaxDuration <= 0 || s.MinDuration > s.MaxDuration {
		return nil, fmt.Errorf("scene duration window %.2f-%.2f: %w",
			s.MinDuration, s.MaxDuration, config.ErrInvalidConfig)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("segmenter: %w", ErrEmptyInput)
	}
	if err := subtitle.Validate(entries); err != nil {
		return nil, err
	}

	var scenes []Scene
	var buffer []string
	pendingStart := entries[0].Start

	for i, entry := range entries {
		buffer = append(buffer, entry.Text)
		currentDuration := entry.End - pendingStart

		sentenceEnd := endsSentence(entry.Text)
		last := i == len(entries)-1

		boundary := (sentenceEnd && currentDuration >= s.MinDuration) ||
			currentDuration >= s.MaxDuration ||
			last

		if !boundary {
			continue
		}

		scenes = append(scenes, Scene{
			Text:  strings.Join(buffer, " "),
			Start: pendingStart,
			End:   entry.End,
		})
		buffer = buffer[:0]
		if last {
			pendingStart = entry.End
		} else {
			pendingStart = entries[i+1].Start
		}
	}

	return scenes, nil
}

func endsSentence(text string) bool {
	t := strings.TrimRight(text, " \t")
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '?', '!':
		return true
	}
	return false
}

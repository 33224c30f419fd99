package director

import (
	"errors"
	"testing"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/subtitle"
)

func exampleEntries() []subtitle.Entry {
	return []subtitle.Entry{
		{Start: 0.0, End: 3.5, Text: "Welcome to this tutorial."},
		{Start: 3.5, End: 13.0, Text: "Today we learn keyframes, but first let's review."},
		{Start: 13.0, End: 16.0, Text: "That's the plan."},
	}
}

func TestSegmentExample(t *testing.T) {
	scenes, err := NewSegmenter().Segment(exampleEntries())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}

	// First entry ends a sentence but is too short; the second closes
	// the scene at 13.0 with both conditions met.
	if scenes[0].Start != 0.0 || scenes[0].End != 13.0 {
		t.Errorf("Scene 0: expected [0.0, 13.0], got [%.1f, %.1f]", scenes[0].Start, scenes[0].End)
	}
	wantText := "Welcome to this tutorial. Today we learn keyframes, but first let's review."
	if scenes[0].Text != wantText {
		t.Errorf("Scene 0 text: expected %q, got %q", wantText, scenes[0].Text)
	}

	// Trailing entry force-closes even below the minimum duration.
	if scenes[1].Start != 13.0 || scenes[1].End != 16.0 {
		t.Errorf("Scene 1: expected [13.0, 16.0], got [%.1f, %.1f]", scenes[1].Start, scenes[1].End)
	}
	if scenes[1].Description != "" {
		t.Errorf("Description should be empty pending external fill, got %q", scenes[1].Description)
	}
}

func TestSegmentMaxDurationForcesClose(t *testing.T) {
	// No sentence-terminal punctuation anywhere; only the ceiling and
	// the end of input can close scenes.
	entries := []subtitle.Entry{
		{Start: 0, End: 6, Text: "one"},
		{Start: 6, End: 12, Text: "two"},
		{Start: 12, End: 18, Text: "three"},
		{Start: 18, End: 24, Text: "four"},
		{Start: 24, End: 30, Text: "five"},
	}

	scenes, err := NewSegmenter().Segment(entries)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].End != 24.0 {
		t.Errorf("Scene 0 should force-close at 24.0 (>= max), got %.1f", scenes[0].End)
	}
	if scenes[1].Start != 24.0 || scenes[1].End != 30.0 {
		t.Errorf("Scene 1: expected [24.0, 30.0], got [%.1f, %.1f]", scenes[1].Start, scenes[1].End)
	}
}

func TestSegmentSingleOversizedEntry(t *testing.T) {
	// One entry longer than the maximum still yields exactly one scene.
	entries := []subtitle.Entry{{Start: 0, End: 50, Text: "a very long monologue"}}

	scenes, err := NewSegmenter().Segment(entries)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(scenes) != 1 {
		t.Fatalf("Expected 1 scene, got %d", len(scenes))
	}
	if scenes[0].Start != 0 || scenes[0].End != 50 {
		t.Errorf("Scene 0: expected [0, 50], got [%.1f, %.1f]", scenes[0].Start, scenes[0].End)
	}
}

func TestSegmentCoversFullSpan(t *testing.T) {
	entries := []subtitle.Entry{
		{Start: 1.0, End: 5.0, Text: "Intro words here."},
		{Start: 5.0, End: 12.0, Text: "More narration follows now."},
		{Start: 12.5, End: 19.0, Text: "A gap before this one."},
		{Start: 19.0, End: 26.0, Text: "Closing thoughts arrive."},
		{Start: 26.0, End: 29.5, Text: "Goodbye."},
	}

	scenes, err := NewSegmenter().Segment(entries)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if scenes[0].Start != entries[0].Start {
		t.Errorf("First scene should start at %.1f, got %.1f", entries[0].Start, scenes[0].Start)
	}
	if scenes[len(scenes)-1].End != entries[len(entries)-1].End {
		t.Errorf("Last scene should end at %.1f, got %.1f", entries[len(entries)-1].End, scenes[len(scenes)-1].End)
	}
	for i := 0; i < len(scenes); i++ {
		if scenes[i].End <= scenes[i].Start {
			t.Errorf("Scene %d has non-positive duration: [%.1f, %.1f]", i, scenes[i].Start, scenes[i].End)
		}
		if i > 0 && scenes[i].Start < scenes[i-1].End {
			t.Errorf("Scene %d overlaps previous: %.1f < %.1f", i, scenes[i].Start, scenes[i-1].End)
		}
	}

	var covered float64
	for _, s := range scenes {
		covered += s.Duration()
	}
	span := entries[len(entries)-1].End - entries[0].Start
	if covered > span+1e-9 {
		t.Errorf("Scenes cover %.2fs, more than the %.2fs input span", covered, span)
	}
	t.Logf("%d scenes covering %.2fs of a %.2fs span", len(scenes), covered, span)
}

func TestSegmentEmptyInput(t *testing.T) {
	if _, err := NewSegmenter().Segment(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestSegmentMalformedEntry(t *testing.T) {
	entries := []subtitle.Entry{{Start: 5, End: 5, Text: "zero"}}
	if _, err := NewSegmenter().Segment(entries); !errors.Is(err, subtitle.ErrMalformedEntry) {
		t.Errorf("Expected ErrMalformedEntry, got %v", err)
	}
}

func TestSegmentInvalidWindow(t *testing.T) {
	s := &Segmenter{MinDuration: 20, MaxDuration: 10}
	if _, err := s.Segment(exampleEntries()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for min > max, got %v", err)
	}

	s = &Segmenter{MinDuration: -1, MaxDuration: 10}
	if _, err := s.Segment(exampleEntries()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for negative min, got %v", err)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	a, err := NewSegmenter().Segment(exampleEntries())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	b, err := NewSegmenter().Segment(exampleEntries())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("Scene counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Scene %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

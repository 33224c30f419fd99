package director

import (
	"fmt"

	"github.com/ivlev/srt2video/internal/config"
)

// GenerateKeyframes converts a finalized scene sequence into boundary
// keyframe events. Each adjacent pair contributes a SceneEnd event at
// the earlier scene's end followed by a SceneStart event at the later
// scene's start, so N scenes yield 2*(N-1) events. Visual properties
// are attached by the effects package afterwards.
//
// A single scene has no boundaries and yields an empty, valid result.
func GenerateKeyframes(scenes []Scene, fps int) ([]KeyframeEvent, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d: %w", fps, config.ErrInvalidConfig)
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("positioner: %w", ErrEmptyInput)
	}

	events := make([]KeyframeEvent, 0, 2*(len(scenes)-1))
	for i := 0; i < len(scenes)-1; i++ {
		events = append(events, KeyframeEvent{
			Kind:       SceneEnd,
			SceneIndex: i,
			Time:       scenes[i].End,
			Frame:      FrameAt(scenes[i].End, fps),
		})
		events = append(events, KeyframeEvent{
			Kind:       SceneStart,
			SceneIndex: i + 1,
			Time:       scenes[i+1].Start,
			Frame:      FrameAt(scenes[i+1].Start, fps),
		})
	}
	return events, nil
}

// FrameAt truncates elapsed time in frames to a frame index. Floor,
// not round: frame 0 covers [0, 1/fps).
func FrameAt(seconds float64, fps int) int {
	return int(seconds * float64(fps))
}

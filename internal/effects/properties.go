package effects

import (
	"github.com/ivlev/srt2video/internal/director"
)

// Role is the narrative function of a keyframe within the video.
type Role string

const (
	// RoleHook is the opening keyframe of the first scene.
	RoleHook Role = "hook"
	// RoleCompletion is the closing keyframe of the last scene.
	RoleCompletion Role = "completion"
	// RoleTransition covers every other boundary keyframe.
	RoleTransition Role = "transition"
)

// RoleOf derives the narrative role purely from the event's scene
// index and kind against the scene count.
func RoleOf(sceneIndex int, kind director.EventKind, sceneCount int) Role {
	switch {
	case sceneIndex == 0 && kind == director.SceneStart:
		return RoleHook
	case sceneIndex == sceneCount-1 && kind == director.SceneEnd:
		return RoleCompletion
	default:
		return RoleTransition
	}
}

// ProfileFor returns the fixed visual preset for a role. No
// interpolation, no randomness.
func ProfileFor(role Role) director.VisualProperties {
	switch role {
	case RoleHook:
		return director.VisualProperties{
			Contrast:      2.0,
			Saturation:    1.5,
			Motion:        director.MotionHigh,
			ZoomStart:     1.05,
			ZoomEnd:       1.0,
			NeonCoverage:  0.15,
			SubtitleScale: 1.2,
		}
	case RoleCompletion:
		return director.VisualProperties{
			Contrast:      1.3,
			Saturation:    1.2,
			Motion:        director.MotionLow,
			ZoomStart:     1.0,
			ZoomEnd:       1.02,
			NeonCoverage:  0.10,
			SubtitleScale: 1.0,
		}
	default:
		return director.VisualProperties{
			Contrast:      1.5,
			Saturation:    1.4,
			Motion:        director.MotionMedium,
			ZoomStart:     1.0,
			ZoomEnd:       1.03,
			NeonCoverage:  0.12,
			SubtitleScale: 1.0,
		}
	}
}

// AssignProperties fills the visual properties of every event in
// place, applying the variant's contrast and saturation multipliers
// on top of the role profile.
func AssignProperties(events []director.KeyframeEvent, sceneCount int, contrastScale, saturationScale float64) {
	if contrastScale <= 0 {
		contrastScale = 1.0
	}
	if saturationScale <= 0 {
		saturationScale = 1.0
	}
	for i := range events {
		props := ProfileFor(RoleOf(events[i].SceneIndex, events[i].Kind, sceneCount))
		props.Contrast *= contrastScale
		props.Saturation *= saturationScale
		events[i].Properties = props
	}
}

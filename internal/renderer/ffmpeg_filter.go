package renderer

import (
	"fmt"
	"strings"

	"github.com/ivlev/srt2video/internal/director"
)

// XfadeName maps a transition spec onto the ffmpeg xfade transition
// that realizes it.
func XfadeName(spec director.TransitionSpec) string {
	switch spec.Kind {
	case director.DipToBlack:
		return "fadeblack"
	case director.Wipe:
		if spec.Direction == "right_to_left" {
			return "wiperight"
		}
		return "wipeleft"
	case director.Zoom:
		return "zoomin"
	default:
		return "fade"
	}
}

// TransitionFilter renders a single xfade filter stage for one scene
// pair. in and next are the labels of the two video streams, offset is
// where the transition starts on the combined timeline.
func TransitionFilter(spec director.TransitionSpec, in, next, out string, offset float64) string {
	return fmt.Sprintf("%s%sxfade=transition=%s:duration=%f:offset=%f%s",
		in, next, XfadeName(spec), spec.Duration, offset, out)
}

// TransitionChain builds the full xfade filtergraph for a scenario,
// chaining one stage per transition with offsets accumulated from the
// scene durations.
func TransitionChain(s *director.Scenario) string {
	if len(s.Scenes) < 2 || len(s.Transitions) == 0 {
		return ""
	}

	var stages []string
	lastOut := "[0:v]"
	currentOffset := 0.0

	for i, spec := range s.Transitions {
		currentOffset += s.Scenes[i].Duration() - spec.Duration

		nextIn := fmt.Sprintf("[%d:v]", i+1)
		outName := fmt.Sprintf("[v%d]", i+1)
		stages = append(stages, TransitionFilter(spec, lastOut, nextIn, outName, currentOffset))
		lastOut = outName
	}

	return strings.Join(stages, ";")
}

// ZoomFilter renders a zoompan expression moving linearly from the
// keyframe's zoom start to its zoom end over the given duration.
func ZoomFilter(props director.VisualProperties, duration float64, fps, width, height int) string {
	frames := int(duration * float64(fps))
	if frames < 1 {
		frames = 1
	}
	zoomExpr := fmt.Sprintf("%.6f+(%.6f-%.6f)*on/%d",
		props.ZoomStart, props.ZoomEnd, props.ZoomStart, frames)
	return fmt.Sprintf("zoompan=z='%s':x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':d=%d:s=%dx%d:fps=%d",
		zoomExpr, frames, width, height, fps)
}

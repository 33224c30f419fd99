package export

import (
	"fmt"
	"io"

	"github.com/ivlev/srt2video/internal/director"
	"github.com/ivlev/srt2video/internal/renderer"
)

// WriteFilterScript renders the scenario as an ffmpeg filtergraph
// sketch: one zoompan stage per boundary keyframe and the xfade chain
// joining the scenes. It is a projection only; nothing here runs
// ffmpeg.
func WriteFilterScript(w io.Writer, s *director.Scenario) error {
	if _, err := fmt.Fprintf(w, "# scenario %s: %d scenes, %d keyframes, %s @ %d fps\n",
		s.Version, s.Metadata.SceneCount, s.Metadata.KeyframeCount,
		s.Metadata.Resolution, s.Metadata.FPS); err != nil {
		return err
	}

	width, height := parseResolution(s.Metadata.Resolution)
	for _, kf := range s.Keyframes {
		filter := renderer.ZoomFilter(kf.Properties, 1.0, s.Metadata.FPS, width, height)
		if _, err := fmt.Fprintf(w, "# %s scene %d @ frame %d\n%s\n",
			kf.Kind, kf.SceneIndex, kf.Frame, filter); err != nil {
			return err
		}
	}

	if chain := renderer.TransitionChain(s); chain != "" {
		if _, err := fmt.Fprintf(w, "# transitions\n%s\n", chain); err != nil {
			return err
		}
	}
	return nil
}

func parseResolution(res string) (int, int) {
	var w, h int
	if _, err := fmt.Sscanf(res, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 1280, 720
	}
	return w, h
}

package export

import (
	"fmt"
	"io"

	"github.com/ivlev/srt2video/internal/director"
	"github.com/ivlev/srt2video/internal/subtitle"
)

// WriteAnnotatedSRT re-emits the original cues with a scene tag
// appended to the first cue of each scene. Every cue survives in
// order; only annotation lines are added.
func WriteAnnotatedSRT(w io.Writer, entries []subtitle.Entry, scenes []director.Scene) error {
	sceneIdx := 0
	tagged := -1

	for i, e := range entries {
		for sceneIdx < len(scenes)-1 && e.Start >= scenes[sceneIdx+1].Start {
			sceneIdx++
		}

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n",
			i+1, subtitle.FormatTime(e.Start), subtitle.FormatTime(e.End), e.Text); err != nil {
			return err
		}

		if sceneIdx < len(scenes) && tagged < sceneIdx {
			tagged = sceneIdx
			label := scenes[sceneIdx].Description
			if label == "" {
				label = fmt.Sprintf("%.1fs-%.1fs", scenes[sceneIdx].Start, scenes[sceneIdx].End)
			}
			if _, err := fmt.Fprintf(w, "[scene %d: %s]\n", sceneIdx+1, label); err != nil {
				return err
			}
		}
	}
	return nil
}

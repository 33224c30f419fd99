package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ivlev/srt2video/internal/director"
)

// WriteMarkers renders the scenario's keyframes as a timeline-marker
// CSV that editing tools can import: frame, seconds, kind, scene and a
// human-readable label per row.
func WriteMarkers(w io.Writer, s *director.Scenario) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "seconds", "kind", "scene", "label"}); err != nil {
		return err
	}

	for _, kf := range s.Keyframes {
		label := ""
		if kf.SceneIndex < len(s.Scenes) {
			label = markerLabel(s.Scenes[kf.SceneIndex])
		}
		row := []string{
			strconv.Itoa(kf.Frame),
			fmt.Sprintf("%.3f", kf.Time),
			string(kf.Kind),
			strconv.Itoa(kf.SceneIndex),
			label,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMarkersFile writes the marker CSV to path.
func WriteMarkersFile(s *director.Scenario, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMarkers(f, s)
}

func markerLabel(scene director.Scene) string {
	if scene.Description != "" {
		return scene.Description
	}
	words := strings.Fields(scene.Text)
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.Join(words, " ")
}

package export

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/engine"
	"github.com/ivlev/srt2video/internal/subtitle"
)

func testEntries() []subtitle.Entry {
	return []subtitle.Entry{
		{Start: 0.0, End: 3.5, Text: "Welcome to this tutorial."},
		{Start: 3.5, End: 13.0, Text: "Today we learn keyframes, but first let's review."},
		{Start: 13.0, End: 16.0, Text: "That's the plan."},
	}
}

func TestScenarioWriteRead(t *testing.T) {
	scenario, err := engine.NewGenerator(config.Default()).Generate(testEntries())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := WriteScenario(scenario, path); err != nil {
		t.Fatalf("WriteScenario failed: %v", err)
	}

	read, err := ReadScenario(path)
	if err != nil {
		t.Fatalf("ReadScenario failed: %v", err)
	}

	if !reflect.DeepEqual(scenario, read) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", scenario, read)
	}
}

func TestWriteMarkers(t *testing.T) {
	scenario, err := engine.NewGenerator(config.Default()).Generate(testEntries())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteMarkers(&buf, scenario); err != nil {
		t.Fatalf("WriteMarkers failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(scenario.Keyframes)+1 {
		t.Fatalf("Expected %d lines, got %d", len(scenario.Keyframes)+1, len(lines))
	}
	if lines[0] != "frame,seconds,kind,scene,label" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "390,13.000,scene_end,0,") {
		t.Errorf("Unexpected first marker row: %s", lines[1])
	}
}

func TestWriteAnnotatedSRT(t *testing.T) {
	entries := testEntries()
	scenario, err := engine.NewGenerator(config.Default()).Generate(entries)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteAnnotatedSRT(&buf, entries, scenario.Scenes); err != nil {
		t.Fatalf("WriteAnnotatedSRT failed: %v", err)
	}
	out := buf.String()

	// Every original cue survives in order.
	if got := strings.Count(out, "-->"); got != len(entries) {
		t.Errorf("Expected %d timing lines, got %d", len(entries), got)
	}
	for _, e := range entries {
		if !strings.Contains(out, e.Text) {
			t.Errorf("Cue text missing from output: %q", e.Text)
		}
	}

	// One scene tag per scene.
	for i := range scenario.Scenes {
		tag := "[scene " + string(rune('1'+i)) + ":"
		if !strings.Contains(out, tag) {
			t.Errorf("Missing annotation %q in:\n%s", tag, out)
		}
	}
}

func TestWriteFilterScript(t *testing.T) {
	scenario, err := engine.NewGenerator(config.Default()).Generate(testEntries())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteFilterScript(&buf, scenario); err != nil {
		t.Fatalf("WriteFilterScript failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "zoompan=") {
		t.Errorf("Expected zoompan stages in:\n%s", out)
	}
	if !strings.Contains(out, "xfade=transition=fadeblack") {
		t.Errorf("Expected a fadeblack xfade stage in:\n%s", out)
	}
}

package describer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ivlev/srt2video/internal/director"
)

func TestFillTemplate(t *testing.T) {
	scenes := []director.Scene{
		{Text: "Welcome to this tutorial. Today we learn keyframes, but first let's review.", Start: 0, End: 13},
		{Text: "That's the plan.", Start: 13, End: 16},
	}

	if err := Fill(context.Background(), TemplateDescriber{}, scenes); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	if scenes[0].Description != "Scene 1 of 2: Welcome to this tutorial. Today we learn keyframes," {
		t.Errorf("Unexpected description 0: %q", scenes[0].Description)
	}
	if scenes[1].Description != "Scene 2 of 2: That's the plan." {
		t.Errorf("Unexpected description 1: %q", scenes[1].Description)
	}

	// Descriptions are the only mutation.
	if scenes[0].Start != 0 || scenes[0].End != 13 || !strings.HasPrefix(scenes[0].Text, "Welcome") {
		t.Errorf("Fill changed scene fields: %+v", scenes[0])
	}
}

type failingDescriber struct{}

var errBoom = errors.New("collaborator unavailable")

func (failingDescriber) Describe(context.Context, string, int, int) (string, error) {
	return "", errBoom
}

func TestFillPropagatesErrors(t *testing.T) {
	scenes := []director.Scene{{Text: "a"}, {Text: "b"}}
	if err := Fill(context.Background(), failingDescriber{}, scenes); !errors.Is(err, errBoom) {
		t.Errorf("Expected collaborator error, got %v", err)
	}
}

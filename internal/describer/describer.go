package describer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/srt2video/internal/director"
)

// Describer turns a scene's narration text into a short visual
// description. Implementations are external collaborators (typically
// a text-generation service); the core pipeline never calls them.
type Describer interface {
	Describe(ctx context.Context, sceneText string, index, total int) (string, error)
}

// Fill populates the Description of every scene concurrently. Only
// Description is written; all other scene fields stay untouched. The
// first collaborator error cancels the remaining calls.
func Fill(ctx context.Context, d Describer, scenes []director.Scene) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)

	total := len(scenes)
	for i := range scenes {
		i := i
		eg.Go(func() error {
			desc, err := d.Describe(ctx, scenes[i].Text, i, total)
			if err != nil {
				return fmt.Errorf("describe scene %d: %w", i, err)
			}
			scenes[i].Description = desc
			return nil
		})
	}
	return eg.Wait()
}

// TemplateDescriber is a deterministic offline Describer for tests and
// dry runs: it summarizes the opening words of the narration.
type TemplateDescriber struct {
	// MaxWords caps the excerpt length; zero means 8.
	MaxWords int
}

func (t TemplateDescriber) Describe(_ context.Context, sceneText string, index, total int) (string, error) {
	max := t.MaxWords
	if max <= 0 {
		max = 8
	}
	words := strings.Fields(sceneText)
	if len(words) > max {
		words = words[:max]
	}
	return fmt.Sprintf("Scene %d of %d: %s", index+1, total, strings.Join(words, " ")), nil
}

package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/director"
	"github.com/ivlev/srt2video/internal/subtitle"
	"github.com/ivlev/srt2video/internal/system"
)

// GenerateVariants runs one full generation per variant overlay.
// Variants are independent and side-effect-free, so they are fanned
// out over a worker pool sized by the machine's core count. Results
// come back in the order of the variants argument, each tagged with
// its 0-based variant id.
//
// A failing variant never aborts its siblings: its slot in the result
// slice stays nil and the joined error reports every failure.
func (g *Generator) GenerateVariants(ctx context.Context, entries []subtitle.Entry, variants []config.Variant) ([]*director.Scenario, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("variants: %w", director.ErrEmptyInput)
	}

	results := make([]*director.Scenario, len(variants))
	failures := make([]error, len(variants))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(system.AvailableWorkers(len(variants)))

	for i, v := range variants {
		i, v := i, v
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = err
				return nil
			}

			variant := NewGenerator(g.Config.Apply(v))
			scenario, err := variant.Generate(entries)
			if err != nil {
				failures[i] = fmt.Errorf("variant %d (%s): %w", i, v.Name, err)
				return nil
			}

			id := i
			scenario.Metadata.VariantID = &id
			scenario.Metadata.VariantName = v.Name
			results[i] = scenario
			return nil
		})
	}

	// Workers report failures through the failures slice, never through
	// the group error, so Wait cannot fail here.
	_ = eg.Wait()

	return results, errors.Join(failures...)
}

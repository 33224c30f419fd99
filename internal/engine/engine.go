package engine

import (
	"github.com/rs/zerolog"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/director"
	"github.com/ivlev/srt2video/internal/effects"
	"github.com/ivlev/srt2video/internal/logging"
	"github.com/ivlev/srt2video/internal/subtitle"
)

const scenarioVersion = "1.0"

// Generator runs the full single-variant pipeline: segmentation,
// keyframe positioning, transition selection and visual styling. It
// holds no mutable state between calls, so one Generator may serve
// concurrent generations.
type Generator struct {
	Config config.Generation
	log    zerolog.Logger
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg config.Generation) *Generator {
	return &Generator{
		Config: cfg,
		log:    logging.WithComponent("engine"),
	}
}

// Generate produces a complete scenario from subtitle entries. The
// result is deterministic: the same entries and configuration always
// yield an identical scenario.
func (g *Generator) Generate(entries []subtitle.Entry) (*director.Scenario, error) {
	cfg := g.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	segmenter := &director.Segmenter{
		MinDuration: cfg.MinSceneDuration,
		MaxDuration: cfg.MaxSceneDuration,
	}
	scenes, err := segmenter.Segment(entries)
	if err != nil {
		return nil, err
	}

	keyframes, err := director.GenerateKeyframes(scenes, cfg.FPS)
	if err != nil {
		return nil, err
	}

	transitions := effects.SelectTransitions(scenes, cfg.TransitionScale)
	effects.AssignProperties(keyframes, len(scenes), cfg.ContrastScale, cfg.SaturationScale)

	g.log.Debug().
		Int("entries", len(entries)).
		Int("scenes", len(scenes)).
		Int("keyframes", len(keyframes)).
		Int("transitions", len(transitions)).
		Msg("scenario assembled")

	return &director.Scenario{
		Version: scenarioVersion,
		Metadata: director.Metadata{
			TotalDuration: scenes[len(scenes)-1].End - scenes[0].Start,
			SceneCount:    len(scenes),
			KeyframeCount: len(keyframes),
			FPS:           cfg.FPS,
			Resolution:    cfg.Resolution(),
			AspectRatio:   cfg.AspectRatio(),
			Platform:      cfg.Platform,
		},
		Scenes:      scenes,
		Keyframes:   keyframes,
		Transitions: transitions,
	}, nil
}

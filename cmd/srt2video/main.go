package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivlev/srt2video/internal/config"
	"github.com/ivlev/srt2video/internal/describer"
	"github.com/ivlev/srt2video/internal/director"
	"github.com/ivlev/srt2video/internal/engine"
	"github.com/ivlev/srt2video/internal/export"
	"github.com/ivlev/srt2video/internal/logging"
	"github.com/ivlev/srt2video/internal/subtitle"
	"github.com/ivlev/srt2video/internal/system"
)

func main() {
	inputPtr := flag.String("input", "", "Path to an SRT file (default: newest file in input/subtitles/)")
	configPtr := flag.String("config", "", "YAML generation config (flags below override its values)")
	outputPtr := flag.String("output", "output", "Output directory")
	fpsPtr := flag.Int("fps", 30, "Frame rate for keyframe positions")
	presetPtr := flag.String("preset", "", "Aspect preset: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	minScenePtr := flag.Float64("min-scene", 10.0, "Minimum scene duration (seconds)")
	maxScenePtr := flag.Float64("max-scene", 20.0, "Maximum scene duration (seconds)")
	variantsPtr := flag.Int("variants", 0, "Number of variants to generate (0 = single pass)")
	variantFilePtr := flag.String("variant-config", "", "YAML file with variant overlays (overrides -variants)")
	seedPtr := flag.Int64("seed", 0, "Seed for filler variant parameters (0 = time-based)")
	markersPtr := flag.Bool("markers", false, "Also write a timeline-marker CSV")
	annotatePtr := flag.Bool("annotate", false, "Also write an annotated copy of the subtitles")
	filtersPtr := flag.Bool("filters", false, "Also write an ffmpeg filtergraph sketch")
	describePtr := flag.Bool("describe", false, "Fill scene descriptions with the offline template describer")
	verbosePtr := flag.Bool("verbose", false, "Debug logging")

	flag.Parse()

	logging.Init(*verbosePtr)
	log := logging.WithComponent("cli")

	os.MkdirAll("input/subtitles", 0755)
	os.MkdirAll(*outputPtr, 0755)

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestSubtitle("input/subtitles")
		if err != nil {
			log.Fatal().Err(err).Msg("no input; put an .srt file in input/subtitles/")
		}
		inputPath = latest
		log.Info().Str("input", inputPath).Msg("picked newest subtitle file")
	}

	entries, err := subtitle.ReadFile(inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load subtitles")
	}

	cfg := config.Default()
	if *configPtr != "" {
		cfg, err = config.Load(*configPtr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fpsPtr
		case "min-scene":
			cfg.MinSceneDuration = *minScenePtr
		case "max-scene":
			cfg.MaxSceneDuration = *maxScenePtr
		}
	})
	cfg.ApplyPreset(*presetPtr)

	runID := uuid.NewString()
	generator := engine.NewGenerator(cfg)
	ctx := context.Background()

	var scenarios []*scenarioOutput

	switch {
	case *variantFilePtr != "":
		variants, err := config.LoadVariants(*variantFilePtr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load variant config")
		}
		scenarios, err = expand(ctx, generator, entries, variants, runID)
		if err != nil {
			log.Error().Err(err).Msg("some variants failed")
		}
	case *variantsPtr > 0:
		seed := *seedPtr
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		variants := config.DefaultVariants(*variantsPtr, rand.New(rand.NewSource(seed)))
		scenarios, err = expand(ctx, generator, entries, variants, runID)
		if err != nil {
			log.Error().Err(err).Msg("some variants failed")
		}
	default:
		scenario, err := generator.Generate(entries)
		if err != nil {
			log.Fatal().Err(err).Msg("generation failed")
		}
		scenario.Metadata.GenerationID = runID
		scenarios = []*scenarioOutput{{scenario: scenario, suffix: ""}}
	}

	if len(scenarios) == 0 {
		log.Fatal().Msg("no scenario produced")
	}

	if *describePtr {
		d := describer.TemplateDescriber{}
		for _, out := range scenarios {
			if err := describer.Fill(ctx, d, out.scenario.Scenes); err != nil {
				log.Warn().Err(err).Msg("description fill failed")
			}
		}
	}

	baseName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	baseName = strings.ReplaceAll(baseName, " ", "_")
	timestamp := time.Now().Format("2006-01-02_15-04-05")

	for _, out := range scenarios {
		s := out.scenario
		stem := filepath.Join(*outputPtr, fmt.Sprintf("%s_%s%s", baseName, timestamp, out.suffix))

		scenarioPath := stem + ".yaml"
		if err := export.WriteScenario(s, scenarioPath); err != nil {
			log.Fatal().Err(err).Msg("failed to write scenario")
		}
		log.Info().
			Str("path", scenarioPath).
			Int("scenes", s.Metadata.SceneCount).
			Int("keyframes", s.Metadata.KeyframeCount).
			Float64("duration", s.Metadata.TotalDuration).
			Msg("scenario written")

		if *markersPtr {
			if err := export.WriteMarkersFile(s, stem+"_markers.csv"); err != nil {
				log.Fatal().Err(err).Msg("failed to write markers")
			}
		}
		if *annotatePtr {
			f, err := os.Create(stem + "_annotated.srt")
			if err == nil {
				err = export.WriteAnnotatedSRT(f, entries, s.Scenes)
				f.Close()
			}
			if err != nil {
				log.Fatal().Err(err).Msg("failed to write annotated subtitles")
			}
		}
		if *filtersPtr {
			f, err := os.Create(stem + "_filters.txt")
			if err == nil {
				err = export.WriteFilterScript(f, s)
				f.Close()
			}
			if err != nil {
				log.Fatal().Err(err).Msg("failed to write filter script")
			}
		}
	}

	fmt.Printf("[+++] Done: %d scenario(s) in %s\n", len(scenarios), *outputPtr)
}

type scenarioOutput struct {
	scenario *director.Scenario
	suffix   string
}

func expand(ctx context.Context, g *engine.Generator, entries []subtitle.Entry, variants []config.Variant, runID string) ([]*scenarioOutput, error) {
	results, err := g.GenerateVariants(ctx, entries, variants)
	var out []*scenarioOutput
	for i, s := range results {
		if s == nil {
			continue
		}
		s.Metadata.GenerationID = runID
		out = append(out, &scenarioOutput{
			scenario: s,
			suffix:   fmt.Sprintf("_v%d_%s", i, strings.ToLower(strings.ReplaceAll(variants[i].Name, " ", "-"))),
		})
	}
	return out, err
}

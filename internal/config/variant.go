package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Variant is a named configuration overlay applied on top of a base
// Generation for one expansion pass. Scales are multipliers; 1.0
// leaves the base value unchanged.
type Variant struct {
	Name            string  `yaml:"name"`
	Platform        string  `yaml:"platform"`
	ContrastScale   float64 `yaml:"contrast_scale"`
	SaturationScale float64 `yaml:"saturation_scale"`
	TransitionScale float64 `yaml:"transition_scale"`
}

// DefaultVariants returns n variant overlays. The first three are fixed
// platform profiles; anything beyond that is drawn from r so callers
// control reproducibility with the seed.
func DefaultVariants(n int, r *rand.Rand) []Variant {
	fixed := []Variant{
		{
			Name:            "Conservative",
			Platform:        "youtube",
			ContrastScale:   0.9,
			SaturationScale: 0.9,
			TransitionScale: 1.2,
		},
		{
			Name:            "Balanced",
			Platform:        "universal",
			ContrastScale:   1.0,
			SaturationScale: 1.0,
			TransitionScale: 1.0,
		},
		{
			Name:            "Aggressive",
			Platform:        "tiktok",
			ContrastScale:   1.2,
			SaturationScale: 1.25,
			TransitionScale: 0.8,
		},
	}

	if n <= len(fixed) {
		return fixed[:n]
	}

	variants := make([]Variant, 0, n)
	variants = append(variants, fixed...)
	for i := len(fixed); i < n; i++ {
		variants = append(variants, Variant{
			Name:            fmt.Sprintf("Experimental %d", i-len(fixed)+1),
			Platform:        "universal",
			ContrastScale:   uniform(r, 0.85, 1.25),
			SaturationScale: uniform(r, 0.85, 1.30),
			TransitionScale: uniform(r, 0.70, 1.30),
		})
	}
	return variants
}

// uniform draws from [lo, hi). The ranges used above are strictly
// positive, so generated variants always pass Validate.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// LoadVariants reads a variant list from a YAML file.
func LoadVariants(path string) ([]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants: %w", err)
	}
	var variants []Variant
	if err := yaml.Unmarshal(data, &variants); err != nil {
		return nil, fmt.Errorf("parse variants %s: %w", path, err)
	}
	for i := range variants {
		if variants[i].ContrastScale == 0 {
			variants[i].ContrastScale = 1.0
		}
		if variants[i].SaturationScale == 0 {
			variants[i].SaturationScale = 1.0
		}
		if variants[i].TransitionScale == 0 {
			variants[i].TransitionScale = 1.0
		}
	}
	return variants, nil
}

package effects

import (
	"strings"

	"github.com/ivlev/srt2video/internal/director"
)

// overlapThreshold is the shared-token count below which two scenes
// are treated as a topic shift.
const overlapThreshold = 3

// overlapWindow limits the lexical comparison to the opening tokens of
// each scene.
const overlapWindow = 10

// transitionVocabulary marks narration that hands off to a next step.
// The segmenter deliberately ignores these words; they only affect
// which transition bridges a pair of scenes.
var transitionVocabulary = map[string]bool{
	"but":        true,
	"however":    true,
	"next":       true,
	"then":       true,
	"meanwhile":  true,
	"later":      true,
	"finally":    true,
	"now":        true,
	"suddenly":   true,
	"eventually": true,
}

// SelectTransition classifies the relationship between two adjacent
// scenes and returns the effect bridging them. The classification is
// a pure function of the two texts, evaluated in priority order:
// topic shift first, then sequential vocabulary, then continuation.
func SelectTransition(a, b director.Scene) director.TransitionSpec {
	if lexicalOverlap(a.Text, b.Text) < overlapThreshold {
		// Topic shift: cut to black between unrelated scenes.
		return director.TransitionSpec{
			Kind:      director.DipToBlack,
			Duration:  0.7,
			FadeOut:   0.3,
			BlackHold: 0.1,
			FadeIn:    0.3,
		}
	}

	if containsVocabulary(a.Text) {
		// Sequential step within the same topic.
		return director.TransitionSpec{
			Kind:      director.Wipe,
			Duration:  0.5,
			Direction: "left_to_right",
		}
	}

	return director.TransitionSpec{
		Kind:     director.Crossfade,
		Duration: 0.5,
		Easing:   "ease_in_out",
	}
}

// SelectTransitions returns one spec per adjacent scene pair, scaled
// by the variant's transition duration multiplier.
func SelectTransitions(scenes []director.Scene, durationScale float64) []director.TransitionSpec {
	if len(scenes) < 2 {
		return nil
	}
	specs := make([]director.TransitionSpec, 0, len(scenes)-1)
	for i := 0; i < len(scenes)-1; i++ {
		spec := SelectTransition(scenes[i], scenes[i+1])
		if durationScale > 0 && durationScale != 1.0 {
			spec.Duration *= durationScale
			spec.FadeOut *= durationScale
			spec.BlackHold *= durationScale
			spec.FadeIn *= durationScale
		}
		specs = append(specs, spec)
	}
	return specs
}

// lexicalOverlap counts tokens shared by the first overlapWindow
// whitespace-split, lower-cased tokens of each text.
func lexicalOverlap(a, b string) int {
	setA := leadingTokens(a)
	setB := leadingTokens(b)
	overlap := 0
	for tok := range setA {
		if setB[tok] {
			overlap++
		}
	}
	return overlap
}

func leadingTokens(text string) map[string]bool {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) > overlapWindow {
		tokens = tokens[:overlapWindow]
	}
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

func containsVocabulary(text string) bool {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if transitionVocabulary[strings.Trim(tok, ".,!?;:'\"")] {
			return true
		}
	}
	return false
}

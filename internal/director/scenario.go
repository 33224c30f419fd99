package director

// Scene is a contiguous span of video time with its narration text.
// Description stays empty until an external generator fills it; all
// other fields are fixed once the segmenter emits the scene.
type Scene struct {
	Description string  `yaml:"description"`
	Text        string  `yaml:"text"`
	Start       float64 `yaml:"start"`
	End         float64 `yaml:"end"`
}

// Duration returns the scene length in seconds.
func (s Scene) Duration() float64 {
	return s.End - s.Start
}

// EventKind names the two keyframe positions at a scene boundary.
type EventKind string

const (
	SceneEnd   EventKind = "scene_end"
	SceneStart EventKind = "scene_start"
)

// MotionLevel grades how much camera movement a keyframe carries.
type MotionLevel string

const (
	MotionLow    MotionLevel = "low"
	MotionMedium MotionLevel = "medium"
	MotionHigh   MotionLevel = "high"
)

// VisualProperties is the styling parameter set attached to a keyframe.
type VisualProperties struct {
	Contrast      float64     `yaml:"contrast"`
	Saturation    float64     `yaml:"saturation"`
	Motion        MotionLevel `yaml:"motion"`
	ZoomStart     float64     `yaml:"zoom_start"`
	ZoomEnd       float64     `yaml:"zoom_end"`
	NeonCoverage  float64     `yaml:"neon_coverage"`
	SubtitleScale float64     `yaml:"subtitle_scale"`
}

// KeyframeEvent marks a scene boundary instant with a frame-accurate
// position. Frame is the truncation of Time * fps, the usual media
// convention for a frame index.
type KeyframeEvent struct {
	Kind       EventKind        `yaml:"kind"`
	SceneIndex int              `yaml:"scene"`
	Frame      int              `yaml:"frame"`
	Time       float64          `yaml:"time"`
	Properties VisualProperties `yaml:"properties"`
}

// TransitionKind names the visual effect bridging two adjacent scenes.
type TransitionKind string

const (
	Crossfade  TransitionKind = "crossfade"
	DipToBlack TransitionKind = "dip_to_black"
	Wipe       TransitionKind = "wipe"
	Zoom       TransitionKind = "zoom"
)

// TransitionSpec is the selected effect for one adjacent scene pair.
// The extra timing fields are only meaningful for some kinds.
type TransitionSpec struct {
	Kind      TransitionKind `yaml:"kind"`
	Duration  float64        `yaml:"duration"`
	FadeOut   float64        `yaml:"fade_out,omitempty"`
	BlackHold float64        `yaml:"black_hold,omitempty"`
	FadeIn    float64        `yaml:"fade_in,omitempty"`
	Direction string         `yaml:"direction,omitempty"`
	Easing    string         `yaml:"easing,omitempty"`
}

// Metadata summarizes one generation pass.
type Metadata struct {
	GenerationID  string  `yaml:"generation_id,omitempty"`
	TotalDuration float64 `yaml:"total_duration"`
	SceneCount    int     `yaml:"scene_count"`
	KeyframeCount int     `yaml:"keyframe_count"`
	FPS           int     `yaml:"fps"`
	Resolution    string  `yaml:"resolution"`
	AspectRatio   string  `yaml:"aspect_ratio"`
	Platform      string  `yaml:"platform,omitempty"`
	VariantID     *int    `yaml:"variant_id,omitempty"`
	VariantName   string  `yaml:"variant_name,omitempty"`
}

// Scenario is the complete result of one generation pass: scenes,
// boundary keyframes, per-pair transitions and run metadata. Immutable
// once returned; only scene descriptions may be filled in afterwards.
type Scenario struct {
	Version     string           `yaml:"version"`
	Metadata    Metadata         `yaml:"metadata"`
	Scenes      []Scene          `yaml:"scenes"`
	Keyframes   []KeyframeEvent  `yaml:"keyframes"`
	Transitions []TransitionSpec `yaml:"transitions"`
}

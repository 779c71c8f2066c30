package movieclip

import (
	"log/slog"

	"movieclip/internal/logging"
)

const (
	// DefaultFPS is the frame rate stored when none is configured.
	DefaultFPS = 30
)

// Renderer presents the timeline's current frame.
type Renderer interface {
	RenderFrame(t *Timeline) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(t *Timeline) error

// RenderFrame calls f(t).
func (f RendererFunc) RenderFrame(t *Timeline) error { return f(t) }

// Script is a callback bound to a single frame.
type Script func()

// Timeline is a playback head over TotalFrames discrete frames.
//
// The exported fields may be changed between calls. TotalFrames in particular
// is expected to be kept in sync with whatever FramesProvider refers to.
type Timeline struct {
	CurrentFrame int
	TotalFrames  int
	// FPS is informational; nothing inside the timeline reads it.
	FPS int
	// Loop wraps playback at the ends instead of stalling.
	Loop bool
	// LoopFrame is where a forward, non-yoyo wrap resumes.
	LoopFrame int
	Reverse   bool
	// Yoyo bounces at the ends instead of wrapping. Only applies when Loop is set.
	Yoyo bool
	// Name is used for logging and display only.
	Name           string
	Renderer       Renderer
	FramesProvider any

	playing   bool
	rendering bool
	scripts   map[int]Script
	labels    map[string]int
	// labelOrder keeps insertion order so label lookups are deterministic.
	labelOrder []string
	logger     *slog.Logger
}

// Option customizes a Timeline at construction.
type Option func(*Timeline)

// WithFPS sets the informational frame rate.
func WithFPS(fps int) Option { return func(t *Timeline) { t.FPS = fps } }

// WithStartFrame sets the initial head position. New clamps it into the clip.
func WithStartFrame(frame int) Option { return func(t *Timeline) { t.CurrentFrame = frame } }

// WithTotalFrames sets the frame count.
func WithTotalFrames(total int) Option { return func(t *Timeline) { t.TotalFrames = total } }

// WithLoop enables or disables wrapping at the ends.
func WithLoop(loop bool) Option { return func(t *Timeline) { t.Loop = loop } }

// WithLoopFrame sets the frame a forward wrap resumes at.
func WithLoopFrame(frame int) Option { return func(t *Timeline) { t.LoopFrame = frame } }

// WithReverse sets the initial play direction.
func WithReverse(reverse bool) Option { return func(t *Timeline) { t.Reverse = reverse } }

// WithYoyo enables ping-pong playback.
func WithYoyo(yoyo bool) Option { return func(t *Timeline) { t.Yoyo = yoyo } }

// WithName sets the display name.
func WithName(name string) Option { return func(t *Timeline) { t.Name = name } }

// WithRenderer sets the renderer invoked on every render.
func WithRenderer(r Renderer) Option { return func(t *Timeline) { t.Renderer = r } }

// WithFramesProvider stores an opaque reference to the frame source.
func WithFramesProvider(p any) Option { return func(t *Timeline) { t.FramesProvider = p } }

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Timeline) { t.logger = logger }
}

// New constructs a stopped Timeline. Without options it has no frames, plays
// forwards at 30 fps and loops back to frame 0.
func New(opts ...Option) *Timeline {
	t := &Timeline{
		FPS:     DefaultFPS,
		Loop:    true,
		scripts: make(map[int]Script),
		labels:  make(map[string]int),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.CurrentFrame = t.ValidateFrame(Frame(t.CurrentFrame))
	t.logger = logging.NewComponentLogger(t.logger, "movieclip")
	if t.Name != "" {
		t.logger = t.logger.With(logging.String(logging.FieldClip, t.Name))
	}
	return t
}

// IsPlaying reports whether Tick advances the head.
func (t *Timeline) IsPlaying() bool { return t.playing }

// IsRendering reports whether Tick renders after advancing.
func (t *Timeline) IsRendering() bool { return t.rendering }

// State is a point-in-time snapshot of a timeline.
type State struct {
	Name         string `json:"name,omitempty"`
	CurrentFrame int    `json:"current_frame"`
	TotalFrames  int    `json:"total_frames"`
	FPS          int    `json:"fps"`
	Playing      bool   `json:"playing"`
	Rendering    bool   `json:"rendering"`
	Reverse      bool   `json:"reverse"`
	Loop         bool   `json:"loop"`
	Yoyo         bool   `json:"yoyo"`
	Label        string `json:"label,omitempty"`
}

// State captures the timeline's current state, including the label of the
// section the head is in.
func (t *Timeline) State() State {
	label, _ := t.GetLabelForFrame(Frame(t.CurrentFrame))
	return State{
		Name:         t.Name,
		CurrentFrame: t.CurrentFrame,
		TotalFrames:  t.TotalFrames,
		FPS:          t.FPS,
		Playing:      t.playing,
		Rendering:    t.rendering,
		Reverse:      t.Reverse,
		Loop:         t.Loop,
		Yoyo:         t.Yoyo,
		Label:        label,
	}
}

package testsupport

import (
	"testing"

	"movieclip/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a default config for a clip with the given frame count,
// plain uncoloured output, and any provided options applied.
func NewConfig(t testing.TB, totalFrames int, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Clip.Name = "test clip"
	cfgVal.Clip.TotalFrames = totalFrames
	cfgVal.Output.Format = "plain"
	cfgVal.Output.Color = "never"

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithLabel appends a label.
func WithLabel(name string, frame int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Labels = append(b.cfg.Labels, config.Label{Name: name, Frame: frame})
	}
}

// WithFrameScript appends a script bound to a frame index.
func WithFrameScript(frame int, action string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scripts = append(b.cfg.Scripts, config.Script{Frame: &frame, Action: action})
	}
}

// WithLabelScript appends a script bound to a label.
func WithLabelScript(label, action string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scripts = append(b.cfg.Scripts, config.Script{Label: label, Action: action})
	}
}

// WithClip lets a test adjust the clip section directly.
func WithClip(fn func(*config.Clip)) ConfigOption {
	return func(b *configBuilder) {
		fn(&b.cfg.Clip)
	}
}

// WithPlayback sets the tick count and idle behaviour.
func WithPlayback(ticks int, stopWhenIdle bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Playback.Ticks = ticks
		b.cfg.Playback.StopWhenIdle = stopWhenIdle
	}
}

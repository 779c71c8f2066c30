package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-isatty"

	"movieclip/internal/logging"
	"movieclip/internal/movieclip"
)

// Output is a renderer whose output may need flushing once a run ends.
type Output interface {
	movieclip.Renderer
	Flush() error
}

// NewOutput returns the renderer for an output format: "table", "json", or
// "plain".
func NewOutput(format string, w io.Writer, colorize bool) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "":
		return NewRecorder(w), nil
	case "json":
		return NewJSONLines(w), nil
	case "plain":
		return NewPlain(w, colorize), nil
	default:
		return nil, fmt.Errorf("output format: unsupported value %q", format)
	}
}

// ShouldColorize resolves a colour mode ("auto", "always", "never") for w.
// Auto colours only terminals, and honours NO_COLOR via noColor.
func ShouldColorize(w io.Writer, mode string, noColor bool) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	}
	if noColor {
		return false
	}
	type fdWriter interface{ Fd() uintptr }
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Frame describes one render.
type Frame struct {
	Seq       int    `json:"seq"`
	Frame     int    `json:"frame"`
	Total     int    `json:"total"`
	Label     string `json:"label,omitempty"`
	Direction string `json:"direction"`
	Playing   bool   `json:"playing"`
	Script    bool   `json:"script"`
}

func describe(seq int, tl *movieclip.Timeline) Frame {
	label, _ := tl.GetLabelForFrame(movieclip.Frame(tl.CurrentFrame))
	return Frame{
		Seq:       seq,
		Frame:     tl.CurrentFrame,
		Total:     tl.TotalFrames,
		Label:     label,
		Direction: Direction(tl.Reverse),
		Playing:   tl.IsPlaying(),
		Script:    tl.HasFrameScript(movieclip.Frame(tl.CurrentFrame)),
	}
}

// Direction names the play direction.
func Direction(reverse bool) string {
	if reverse {
		return "reverse"
	}
	return "forward"
}

// Multi renders through each renderer in order, stopping at the first error.
type Multi []movieclip.Renderer

func (m Multi) RenderFrame(tl *movieclip.Timeline) error {
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.RenderFrame(tl); err != nil {
			return err
		}
	}
	return nil
}

// Trace logs every render at debug level.
type Trace struct {
	logger *slog.Logger
}

// NewTrace creates a trace renderer logging through logger.
func NewTrace(logger *slog.Logger) *Trace {
	return &Trace{logger: logging.NewComponentLogger(logger, "render")}
}

func (tr *Trace) RenderFrame(tl *movieclip.Timeline) error {
	label, _ := tl.GetLabelForFrame(movieclip.Frame(tl.CurrentFrame))
	tr.logger.Debug("frame rendered",
		logging.Int(logging.FieldFrame, tl.CurrentFrame),
		logging.String(logging.FieldLabel, label),
		logging.Bool("playing", tl.IsPlaying()),
	)
	return nil
}

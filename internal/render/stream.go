package render

import (
	"encoding/json"
	"fmt"
	"io"

	"movieclip/internal/movieclip"
)

// JSONLines writes one JSON object per render.
type JSONLines struct {
	enc *json.Encoder
}

// NewJSONLines creates a JSON lines renderer writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

func (j *JSONLines) RenderFrame(tl *movieclip.Timeline) error {
	if err := j.enc.Encode(tl.State()); err != nil {
		return fmt.Errorf("encode frame %d: %w", tl.CurrentFrame, err)
	}
	return nil
}

func (j *JSONLines) Flush() error { return nil }

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// Plain writes "frame N/T" lines, with the section label when there is one.
type Plain struct {
	w        io.Writer
	colorize bool
	seq      int
}

// NewPlain creates a plain-text renderer.
func NewPlain(w io.Writer, colorize bool) *Plain {
	return &Plain{w: w, colorize: colorize}
}

func (p *Plain) RenderFrame(tl *movieclip.Timeline) error {
	p.seq++
	f := describe(p.seq, tl)
	line := fmt.Sprintf("frame %d/%d", f.Frame, f.Total)
	if f.Label != "" {
		label := "[" + f.Label + "]"
		if p.colorize {
			label = ansiCyan + label + ansiReset
		}
		line += " " + label
	}
	if f.Script {
		marker := "*"
		if p.colorize {
			marker = ansiYellow + marker + ansiReset
		}
		line += " " + marker
	}
	if f.Direction == "reverse" {
		line += " <"
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *Plain) Flush() error { return nil }

package render

import (
	"fmt"
	"io"
	"strconv"

	"movieclip/internal/movieclip"
)

// Recorder collects every render and prints them as a table on Flush.
type Recorder struct {
	w    io.Writer
	rows []Frame
}

// NewRecorder creates a recorder that flushes to w. w may be nil when only
// Rows or Table are needed.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

func (r *Recorder) RenderFrame(tl *movieclip.Timeline) error {
	r.rows = append(r.rows, describe(len(r.rows)+1, tl))
	return nil
}

// Rows returns a copy of the recorded frames.
func (r *Recorder) Rows() []Frame {
	out := make([]Frame, len(r.rows))
	copy(out, r.rows)
	return out
}

// Table renders the recorded frames.
func (r *Recorder) Table() string {
	rows := make([][]string, 0, len(r.rows))
	for _, row := range r.rows {
		rows = append(rows, []string{
			strconv.Itoa(row.Seq),
			fmt.Sprintf("%d/%d", row.Frame, row.Total),
			row.Label,
			row.Direction,
			yesNo(row.Script),
		})
	}
	return Table(
		[]string{"#", "Frame", "Section", "Direction", "Script"},
		rows,
		[]Alignment{AlignRight, AlignRight},
		[]string{"", strconv.Itoa(len(r.rows)) + " renders"},
	)
}

// Flush writes the table, if anything was recorded.
func (r *Recorder) Flush() error {
	if r.w == nil || len(r.rows) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.w, r.Table())
	return err
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

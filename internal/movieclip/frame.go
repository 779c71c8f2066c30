package movieclip

import "strconv"

// FrameRef addresses a frame either by index or by label name.
type FrameRef struct {
	index   int
	label   string
	isLabel bool
}

// Frame returns a reference to the frame at index n.
func Frame(n int) FrameRef {
	return FrameRef{index: n}
}

// Label returns a reference resolved through the timeline's labels.
func Label(name string) FrameRef {
	return FrameRef{label: name, isLabel: true}
}

// IsLabel reports whether the reference names a label.
func (r FrameRef) IsLabel() bool { return r.isLabel }

// Index returns the raw frame index of an index reference.
func (r FrameRef) Index() int { return r.index }

// LabelName returns the label of a label reference.
func (r FrameRef) LabelName() string { return r.label }

func (r FrameRef) String() string {
	if r.isLabel {
		return strconv.Quote(r.label)
	}
	return strconv.Itoa(r.index)
}

// ValidateFrame resolves ref to a frame index inside the timeline.
//
// Label references resolve through the registered labels; an unknown label
// resolves to frame 0. Index references are clamped into [0, TotalFrames-1].
// An empty timeline (TotalFrames <= 0) always resolves indexes to 0.
func (t *Timeline) ValidateFrame(ref FrameRef) int {
	if ref.isLabel {
		if frame, ok := t.labels[ref.label]; ok {
			return frame
		}
		return 0
	}
	frame := ref.index
	if frame > t.TotalFrames-1 {
		frame = t.TotalFrames - 1
	}
	if frame < 0 {
		frame = 0
	}
	return frame
}

package movieclip

import (
	"sort"

	"movieclip/internal/logging"
)

// AddFrameScript binds script to the frame ref resolves to, replacing any
// script already there. A nil script removes the binding.
func (t *Timeline) AddFrameScript(ref FrameRef, script Script) {
	frame := t.ValidateFrame(ref)
	if script == nil {
		t.RemoveFrameScript(Frame(frame))
		return
	}
	_, replaced := t.scripts[frame]
	t.scripts[frame] = script
	t.logger.Debug("frame script added",
		logging.Int(logging.FieldFrame, frame),
		logging.Bool("replaced", replaced),
	)
}

// RemoveFrameScript drops the script bound to the frame ref resolves to.
func (t *Timeline) RemoveFrameScript(ref FrameRef) {
	frame := t.ValidateFrame(ref)
	if _, ok := t.scripts[frame]; !ok {
		return
	}
	delete(t.scripts, frame)
	t.logger.Debug("frame script removed", logging.Int(logging.FieldFrame, frame))
}

// HasFrameScript reports whether a script is bound to the frame ref resolves to.
func (t *Timeline) HasFrameScript(ref FrameRef) bool {
	_, ok := t.scripts[t.ValidateFrame(ref)]
	return ok
}

// ScriptFrames returns the frames that carry a script, in ascending order.
func (t *Timeline) ScriptFrames() []int {
	frames := make([]int, 0, len(t.scripts))
	for frame := range t.scripts {
		frames = append(frames, frame)
	}
	sort.Ints(frames)
	return frames
}

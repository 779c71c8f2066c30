package movieclip

import (
	"fmt"

	"movieclip/internal/logging"
)

// LabelEntry pairs a label with the frame it marks.
type LabelEntry struct {
	Name  string `json:"name"`
	Frame int    `json:"frame"`
}

// AddLabelToFrame names the frame ref resolves to. The target must be a frame
// index; pointing a label at another label is rejected. Re-adding an existing
// label moves it to the new frame.
func (t *Timeline) AddLabelToFrame(label string, ref FrameRef) error {
	if ref.isLabel {
		return fmt.Errorf("add label %q: frame must be an index, got label %s: %w", label, ref, ErrInvalidArgument)
	}
	frame := t.ValidateFrame(ref)
	if label == "" {
		return fmt.Errorf("add label: name must not be empty: %w", ErrInvalidArgument)
	}
	if _, exists := t.labels[label]; !exists {
		t.labelOrder = append(t.labelOrder, label)
	}
	t.labels[label] = frame
	t.logger.Debug("label added",
		logging.String(logging.FieldLabel, label),
		logging.Int(logging.FieldFrame, frame),
	)
	return nil
}

// RemoveLabelFromFrame deletes label if it exists.
func (t *Timeline) RemoveLabelFromFrame(label string) {
	if _, ok := t.labels[label]; !ok {
		return
	}
	delete(t.labels, label)
	for i, name := range t.labelOrder {
		if name == label {
			t.labelOrder = append(t.labelOrder[:i], t.labelOrder[i+1:]...)
			break
		}
	}
	t.logger.Debug("label removed", logging.String(logging.FieldLabel, label))
}

// GetLabelForFrame returns the label of the section ref falls in: the label
// with the greatest frame not after the resolved frame. When several labels
// mark that frame, the one added first wins.
func (t *Timeline) GetLabelForFrame(ref FrameRef) (string, bool) {
	frame := t.ValidateFrame(ref)
	nearestLabel := ""
	nearestFrame := -1
	for _, name := range t.labelOrder {
		start := t.labels[name]
		if frame >= start && start > nearestFrame {
			nearestLabel = name
			nearestFrame = start
		}
	}
	return nearestLabel, nearestFrame >= 0
}

// Labels returns the registered labels in insertion order.
func (t *Timeline) Labels() []LabelEntry {
	out := make([]LabelEntry, 0, len(t.labelOrder))
	for _, name := range t.labelOrder {
		out = append(out, LabelEntry{Name: name, Frame: t.labels[name]})
	}
	return out
}

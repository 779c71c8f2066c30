package clipscript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"movieclip/internal/movieclip"
	"movieclip/internal/textutil"
)

// Kind identifies what an action does.
type Kind string

const (
	KindStop        Kind = "stop"
	KindPlay        Kind = "play"
	KindReverse     Kind = "reverse"
	KindGotoAndPlay Kind = "goto_and_play"
	KindGotoAndStop Kind = "goto_and_stop"
	KindLog         Kind = "log"
)

// ErrUnknownAction reports an action string that does not parse.
var ErrUnknownAction = errors.New("unknown action")

// Action is a parsed frame script.
type Action struct {
	Kind Kind
	// Target is set for goto actions.
	Target movieclip.FrameRef
	// Message is set for log actions.
	Message string
}

func (a Action) String() string {
	switch a.Kind {
	case KindGotoAndPlay, KindGotoAndStop:
		return string(a.Kind) + " " + a.Target.String()
	case KindLog:
		return string(a.Kind) + " " + strconv.Quote(a.Message)
	default:
		return string(a.Kind)
	}
}

// Parse reads an action such as "stop", "reverse", "log reached the end" or
// "goto_and_stop intro". Goto targets that parse as integers address frames;
// anything else is a label.
func Parse(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("parse action: empty: %w", ErrUnknownAction)
	}
	kind := Kind(strings.ToLower(fields[0]))
	args := fields[1:]
	switch kind {
	case KindStop, KindPlay, KindReverse:
		if len(args) != 0 {
			return Action{}, fmt.Errorf("parse action %q: %s takes no arguments: %w", line, kind, ErrUnknownAction)
		}
		return Action{Kind: kind}, nil
	case KindGotoAndPlay, KindGotoAndStop:
		if len(args) != 1 {
			return Action{}, fmt.Errorf("parse action %q: %s needs exactly one target: %w", line, kind, ErrUnknownAction)
		}
		return Action{Kind: kind, Target: ParseTarget(args[0])}, nil
	case KindLog:
		if len(args) == 0 {
			return Action{}, fmt.Errorf("parse action %q: log needs a message: %w", line, ErrUnknownAction)
		}
		return Action{Kind: kind, Message: strings.Join(args, " ")}, nil
	default:
		return Action{}, fmt.Errorf("parse action %q: %w", line, ErrUnknownAction)
	}
}

// ParseTarget converts a frame number or label name into a FrameRef.
func ParseTarget(value string) movieclip.FrameRef {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return movieclip.Frame(n)
	}
	return movieclip.Label(textutil.NormalizeLabel(value))
}

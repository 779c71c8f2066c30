package clipscript

import (
	"fmt"
	"log/slog"

	"movieclip/internal/config"
	"movieclip/internal/logging"
	"movieclip/internal/movieclip"
	"movieclip/internal/textutil"
)

// Binder registers actions as frame scripts and collects their failures.
type Binder struct {
	logger *slog.Logger
	err    error
	fired  int
}

// NewBinder creates a binder that logs through logger.
func NewBinder(logger *slog.Logger) *Binder {
	return &Binder{logger: logging.NewComponentLogger(logger, "clipscript")}
}

// Bind registers action as the script for ref on tl.
func (b *Binder) Bind(tl *movieclip.Timeline, ref movieclip.FrameRef, action Action) {
	frame := tl.ValidateFrame(ref)
	running := false
	tl.AddFrameScript(movieclip.Frame(frame), func() {
		if running {
			b.logger.Debug("skipped re-entrant frame script",
				logging.Int(logging.FieldFrame, frame),
				logging.String(logging.FieldAction, action.String()),
			)
			return
		}
		running = true
		defer func() { running = false }()

		b.fired++
		if err := b.run(tl, frame, action); err != nil {
			b.logger.Warn("frame script failed; stopping timeline",
				logging.Int(logging.FieldFrame, frame),
				logging.String(logging.FieldAction, action.String()),
				logging.Error(err),
			)
			if b.err == nil {
				b.err = fmt.Errorf("frame %d %s: %w", frame, action, err)
			}
			tl.Stop()
		}
	})
}

// BindConfig parses and binds every configured script. Labels must already
// be registered on tl; unknown label targets are rejected rather than
// silently resolving to frame 0.
func (b *Binder) BindConfig(tl *movieclip.Timeline, scripts []config.Script) error {
	known := labelNames(tl)
	for i, script := range scripts {
		action, err := Parse(script.Action)
		if err != nil {
			return fmt.Errorf("scripts[%d]: %w", i, err)
		}
		var ref movieclip.FrameRef
		if script.Frame != nil {
			ref = movieclip.Frame(*script.Frame)
		} else {
			ref = movieclip.Label(script.Label)
		}
		if err := checkLabel(ref, known); err != nil {
			return fmt.Errorf("scripts[%d]: %w", i, err)
		}
		if err := checkLabel(action.Target, known); err != nil {
			return fmt.Errorf("scripts[%d] target: %w", i, err)
		}
		b.Bind(tl, ref, action)
	}
	return nil
}

// Err returns the first error a bound script hit.
func (b *Binder) Err() error { return b.err }

// Fired returns how many times bound scripts ran.
func (b *Binder) Fired() int { return b.fired }

func (b *Binder) run(tl *movieclip.Timeline, frame int, action Action) error {
	switch action.Kind {
	case KindStop:
		tl.Stop()
		return nil
	case KindPlay:
		return tl.Play()
	case KindReverse:
		tl.Reverse = !tl.Reverse
		return nil
	case KindGotoAndPlay:
		return tl.GotoAndPlay(action.Target)
	case KindGotoAndStop:
		return tl.GotoAndStop(action.Target)
	case KindLog:
		b.logger.Info(action.Message, logging.Int(logging.FieldFrame, frame))
		return nil
	default:
		return fmt.Errorf("run %q: %w", action.Kind, ErrUnknownAction)
	}
}

func labelNames(tl *movieclip.Timeline) []string {
	entries := tl.Labels()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func checkLabel(ref movieclip.FrameRef, known []string) error {
	if !ref.IsLabel() {
		return nil
	}
	for _, name := range known {
		if name == ref.LabelName() {
			return nil
		}
	}
	if suggestion, ok := textutil.Suggest(ref.LabelName(), known); ok {
		return fmt.Errorf("unknown label %s (did you mean %q?)", ref, suggestion)
	}
	return fmt.Errorf("unknown label %s", ref)
}

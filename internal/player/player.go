package player

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"movieclip/internal/logging"
	"movieclip/internal/movieclip"
)

// Options controls a playback run.
type Options struct {
	// Ticks is the number of ticks to drive. Zero drives none.
	Ticks int
	// Interval paces ticks. Zero or negative runs them back to back.
	Interval time.Duration
	// StopWhenIdle ends the run as soon as the timeline is no longer playing.
	StopWhenIdle bool
	Logger       *slog.Logger
}

// Result summarizes a playback run.
type Result struct {
	RunID      string `json:"run_id"`
	Ticks      int    `json:"ticks"`
	FinalFrame int    `json:"final_frame"`
	Stopped    bool   `json:"stopped"`
}

// IntervalForFPS converts a frame rate into a tick interval. Non-positive
// rates yield zero (unpaced).
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Run ticks tl according to opts. It returns the first Tick error unchanged,
// or ctx.Err() when cancelled; the result reflects the ticks completed.
func Run(ctx context.Context, tl *movieclip.Timeline, opts Options) (Result, error) {
	result := Result{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "player"))
	if tl.Name != "" {
		logger = logger.With(logging.String(logging.FieldClip, tl.Name))
	}

	logger.Info("run started",
		logging.Int("ticks", opts.Ticks),
		logging.Duration("interval", opts.Interval),
		logging.Int(logging.FieldFrame, tl.CurrentFrame),
	)

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	finish := func(err error) (Result, error) {
		result.FinalFrame = tl.CurrentFrame
		result.Stopped = !tl.IsPlaying()
		if err != nil {
			logger.Warn("run ended early", logging.Int("ticks", result.Ticks), logging.Error(err))
			return result, err
		}
		logger.Info("run finished",
			logging.Int("ticks", result.Ticks),
			logging.Int(logging.FieldFrame, result.FinalFrame),
			logging.Bool("stopped", result.Stopped),
		)
		return result, nil
	}

	for result.Ticks < opts.Ticks {
		if opts.StopWhenIdle && !tl.IsPlaying() {
			break
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return finish(ctx.Err())
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if err := tl.Tick(); err != nil {
			result.Ticks++
			return finish(fmt.Errorf("tick %d: %w", result.Ticks, err))
		}
		result.Ticks++
	}
	return finish(nil)
}

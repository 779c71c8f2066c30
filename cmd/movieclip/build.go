package main

import (
	"fmt"
	"log/slog"

	"movieclip/internal/clipscript"
	"movieclip/internal/config"
	"movieclip/internal/movieclip"
)

// buildTimeline constructs the configured clip with its labels and scripts.
// Labels are registered before scripts so scripts can target them.
func buildTimeline(cfg *config.Config, renderer movieclip.Renderer, logger *slog.Logger) (*movieclip.Timeline, *clipscript.Binder, error) {
	tl := movieclip.New(
		movieclip.WithName(cfg.Clip.Name),
		movieclip.WithFPS(cfg.Clip.FPS),
		movieclip.WithTotalFrames(cfg.Clip.TotalFrames),
		movieclip.WithStartFrame(cfg.Clip.StartFrame),
		movieclip.WithLoop(cfg.Clip.Loop),
		movieclip.WithLoopFrame(cfg.Clip.LoopFrame),
		movieclip.WithReverse(cfg.Clip.Reverse),
		movieclip.WithYoyo(cfg.Clip.Yoyo),
		movieclip.WithRenderer(renderer),
		movieclip.WithLogger(logger),
	)

	for _, label := range cfg.Labels {
		if err := tl.AddLabelToFrame(label.Name, movieclip.Frame(label.Frame)); err != nil {
			return nil, nil, fmt.Errorf("label %q: %w", label.Name, err)
		}
	}

	binder := clipscript.NewBinder(logger)
	if err := binder.BindConfig(tl, cfg.Scripts); err != nil {
		return nil, nil, err
	}
	return tl, binder, nil
}

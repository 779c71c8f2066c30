package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"movieclip/internal/clipscript"
	"movieclip/internal/logging"
	"movieclip/internal/movieclip"
	"movieclip/internal/player"
	"movieclip/internal/render"
	"movieclip/internal/textutil"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var (
		ticks    int
		from     string
		format   string
		color    string
		realtime bool
		reverse  bool
		yoyo     bool
		noLoop   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the configured clip for a number of ticks",
		Long: `Play builds the configured clip, starts it (optionally from --from, a
frame number or label), and ticks it, printing every rendered frame.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("ticks") {
				ticks = cfg.Playback.Ticks
			}
			if ticks < 0 {
				return fmt.Errorf("--ticks must be >= 0")
			}
			if !flags.Changed("format") {
				format = cfg.Output.Format
			}
			format = strings.ToLower(strings.TrimSpace(format))
			if !flags.Changed("color") {
				color = cfg.Output.Color
			}
			if !flags.Changed("realtime") {
				realtime = cfg.Playback.Realtime
			}

			stdout := cmd.OutOrStdout()
			colorize := render.ShouldColorize(stdout, color, os.Getenv("NO_COLOR") != "")
			out, err := render.NewOutput(format, stdout, colorize)
			if err != nil {
				return err
			}

			tl, binder, err := buildTimeline(cfg, render.Multi{out, render.NewTrace(logger)}, logger)
			if err != nil {
				return err
			}
			if flags.Changed("reverse") {
				tl.Reverse = reverse
			}
			if flags.Changed("yoyo") {
				tl.Yoyo = yoyo
			}
			if noLoop {
				tl.Loop = false
			}

			if strings.TrimSpace(from) != "" {
				target := clipscript.ParseTarget(from)
				warnUnknownLabel(cmd, tl, target)
				err = tl.GotoAndPlay(target)
			} else {
				err = tl.Play()
			}
			if err != nil {
				return fmt.Errorf("start playback: %w", err)
			}

			opts := player.Options{
				Ticks:        ticks,
				StopWhenIdle: cfg.Playback.StopWhenIdle,
				Logger:       logger,
			}
			if realtime {
				opts.Interval = player.IntervalForFPS(tl.FPS)
			}
			result, runErr := player.Run(cmd.Context(), tl, opts)
			if err := out.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if runErr != nil {
				return runErr
			}
			if err := binder.Err(); err != nil {
				return fmt.Errorf("frame script: %w", err)
			}

			if format != "json" {
				state := tl.State()
				section := ""
				if state.Label != "" {
					section = " [" + state.Label + "]"
				}
				fmt.Fprintf(stdout, "%d ticks, final frame %d%s, %s\n",
					result.Ticks, result.FinalFrame, section, playbackState(tl))
			}
			logger.Debug("play command finished", logging.String(logging.FieldRunID, result.RunID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 0, "Number of ticks to drive (defaults to playback.ticks)")
	cmd.Flags().StringVar(&from, "from", "", "Frame number or label to start from")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, or plain")
	cmd.Flags().StringVar(&color, "color", "", "Colour output: auto, always, or never")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Pace ticks at the clip's frame rate")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Play backwards")
	cmd.Flags().BoolVar(&yoyo, "yoyo", false, "Bounce at the ends instead of wrapping")
	cmd.Flags().BoolVar(&noLoop, "no-loop", false, "Stall at the ends instead of looping")
	return cmd
}

func warnUnknownLabel(cmd *cobra.Command, tl *movieclip.Timeline, target movieclip.FrameRef) {
	if !target.IsLabel() {
		return
	}
	names := make([]string, 0)
	for _, entry := range tl.Labels() {
		if entry.Name == target.LabelName() {
			return
		}
		names = append(names, entry.Name)
	}
	msg := fmt.Sprintf("warning: unknown label %s, starting at frame 0", target)
	if suggestion, ok := textutil.Suggest(target.LabelName(), names); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
}

func playbackState(tl *movieclip.Timeline) string {
	if tl.IsPlaying() {
		return "playing"
	}
	return "stopped"
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"movieclip/internal/config"
	"movieclip/internal/movieclip"
	"movieclip/internal/render"
	"movieclip/internal/textutil"
)

type clipCheck struct {
	label   string
	kind    statusKind
	message string
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the clip's settings and flag suspicious ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			tl, _, err := buildTimeline(cfg, nil, logger)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, tl.State())
			}

			out := cmd.OutOrStdout()
			colorize := render.ShouldColorize(out, cfg.Output.Color, os.Getenv("NO_COLOR") != "")

			lines := renderSectionHeader(textutil.TitleCase(tl.Name), colorize)
			source := ctx.configPath
			if !ctx.configExists {
				source += " (not found, defaults used)"
			}
			lines = append(lines,
				renderValueLine("Config", source),
				renderValueLine("Frames", strconv.Itoa(tl.TotalFrames)),
				renderValueLine("FPS", strconv.Itoa(tl.FPS)),
				renderValueLine("Start frame", strconv.Itoa(tl.CurrentFrame)),
				renderValueLine("Direction", render.Direction(tl.Reverse)),
				renderValueLine("Loop", yesNo(tl.Loop)),
				renderValueLine("Loop frame", strconv.Itoa(tl.LoopFrame)),
				renderValueLine("Yoyo", yesNo(tl.Yoyo)),
				renderValueLine("Labels", strconv.Itoa(len(tl.Labels()))),
				renderValueLine("Scripts", strconv.Itoa(len(tl.ScriptFrames()))),
				"",
			)
			for _, check := range clipChecks(cfg, tl) {
				lines = append(lines, renderStatusLine(check.label, check.kind, check.message, colorize))
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the initial timeline state as JSON")
	return cmd
}

func clipChecks(cfg *config.Config, tl *movieclip.Timeline) []clipCheck {
	var checks []clipCheck

	if tl.TotalFrames == 0 {
		checks = append(checks, clipCheck{"Frames", statusWarn, "clip has no frames; ticks will not move the head"})
	} else {
		checks = append(checks, clipCheck{"Frames", statusOK, fmt.Sprintf("%d frames", tl.TotalFrames)})
	}

	if cfg.Clip.StartFrame != tl.CurrentFrame {
		checks = append(checks, clipCheck{"Start frame", statusWarn,
			fmt.Sprintf("start_frame %d is out of range, clamped to %d", cfg.Clip.StartFrame, tl.CurrentFrame)})
	}

	switch {
	case !tl.Loop && tl.Yoyo:
		checks = append(checks, clipCheck{"Playback", statusWarn, "yoyo has no effect while loop is off"})
	case tl.Loop && !tl.Yoyo && tl.TotalFrames > 0 && tl.LoopFrame > tl.TotalFrames-1:
		checks = append(checks, clipCheck{"Playback", statusWarn,
			fmt.Sprintf("loop_frame %d is out of range, wraps clamp to %d", tl.LoopFrame, tl.TotalFrames-1)})
	case !tl.Loop:
		checks = append(checks, clipCheck{"Playback", statusInfo, "head stalls at the ends until a script stops it"})
	default:
		checks = append(checks, clipCheck{"Playback", statusOK, ""})
	}

	for _, label := range cfg.Labels {
		if tl.TotalFrames > 0 && label.Frame > tl.TotalFrames-1 {
			checks = append(checks, clipCheck{"Label " + label.Name, statusWarn,
				fmt.Sprintf("frame %d is out of range, clamped to %d", label.Frame, tl.TotalFrames-1)})
		}
	}
	return checks
}

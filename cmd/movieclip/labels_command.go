package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"movieclip/internal/movieclip"
	"movieclip/internal/render"
)

type labelSection struct {
	Name       string `json:"name"`
	Frame      int    `json:"frame"`
	EndFrame   int    `json:"end_frame"`
	ScriptHits int    `json:"scripts"`
}

func newLabelsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List the clip's labels and the frames each section covers",
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

			sections := labelSections(tl)
			if jsonOutput {
				return writeJSON(cmd, sections)
			}
			out := cmd.OutOrStdout()
			if len(sections) == 0 {
				fmt.Fprintln(out, "No labels defined")
				return nil
			}
			rows := make([][]string, 0, len(sections))
			for _, s := range sections {
				rows = append(rows, []string{
					s.Name,
					strconv.Itoa(s.Frame),
					strconv.Itoa(s.EndFrame),
					strconv.Itoa(s.ScriptHits),
				})
			}
			fmt.Fprintln(out, render.Table(
				[]string{"Label", "Start", "End", "Scripts"},
				rows,
				[]render.Alignment{render.AlignLeft, render.AlignRight, render.AlignRight, render.AlignRight},
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// labelSections lists labels in frame order along with the last frame that
// still reports each label through GetLabelForFrame. Labels that never win a
// lookup (an earlier label shares their frame) end before they start.
func labelSections(tl *movieclip.Timeline) []labelSection {
	entries := tl.Labels()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Frame < entries[j].Frame })

	last := tl.TotalFrames - 1
	if last < 0 {
		last = 0
	}
	scripts := tl.ScriptFrames()

	sections := make([]labelSection, 0, len(entries))
	for i, entry := range entries {
		end := last
		for _, next := range entries[i+1:] {
			if next.Frame > entry.Frame {
				end = next.Frame - 1
				break
			}
		}
		if i > 0 && entries[i-1].Frame == entry.Frame {
			end = entry.Frame - 1
		}
		hits := 0
		for _, frame := range scripts {
			if frame >= entry.Frame && frame <= end {
				hits++
			}
		}
		sections = append(sections, labelSection{
			Name:       entry.Name,
			Frame:      entry.Frame,
			EndFrame:   end,
			ScriptHits: hits,
		})
	}
	return sections
}

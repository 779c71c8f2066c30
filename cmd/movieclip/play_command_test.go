package main

import (
	"encoding/json"
	"strings"
	"testing"

	"movieclip/internal/testsupport"
)

func TestPlayPlainStopsOnScript(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	out, _, err := runCLI(t, []string{"play"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	want := strings.Join([]string{
		"frame 0/4 [intro]",
		"frame 1/4 [intro]",
		"frame 2/4 [outro]",
		"frame 3/4 [outro] *",
		"3 ticks, final frame 3 [outro], stopped",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestPlayFlagsOverrideConfig(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	out, _, err := runCLI(t, []string{"play", "--ticks", "2", "--from", "1", "--reverse"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	requireContains(t, out, "frame 1/4 [intro] <")
	requireContains(t, out, "frame 0/4 [intro] <")
	// Reverse wraps from frame 0 to the last frame.
	requireContains(t, out, "frame 3/4 [outro] * <")
	requireContains(t, out, "2 ticks, final frame 3 [outro], stopped")
}

func TestPlayJSONFromLabel(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	out, _, err := runCLI(t, []string{"play", "--format", "json", "--from", "outro", "--ticks", "0"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one JSON line, got %d: %q", len(lines), out)
	}
	var state struct {
		CurrentFrame int    `json:"current_frame"`
		Label        string `json:"label"`
		Playing      bool   `json:"playing"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.CurrentFrame != 2 || state.Label != "outro" {
		t.Fatalf("unexpected state: %+v", state)
	}
	// The first render happens before the playing flag flips.
	if state.Playing {
		t.Fatalf("expected first render before playing, got %+v", state)
	}
}

func TestPlayWarnsOnUnknownLabel(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	out, stderr, err := runCLI(t, []string{"play", "--from", "outr", "--ticks", "0"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	requireContains(t, stderr, `unknown label "outr"`)
	requireContains(t, stderr, `did you mean "outro"?`)
	requireContains(t, out, "frame 0/4 [intro]")
}

func TestPlayTableOutput(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	out, _, err := runCLI(t, []string{"play", "--format", "table"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	requireContains(t, out, "Section")
	requireContains(t, out, "4 renders")
	requireContains(t, out, "3/4")
}

func TestPlayNoLoopStalls(t *testing.T) {
	configPath := testsupport.WriteConfig(t, testsupport.NewConfig(t, 3, testsupport.WithPlayback(5, false)))

	out, _, err := runCLI(t, []string{"play", "--no-loop"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if got := strings.Count(out, "frame 2/3"); got != 4 {
		t.Fatalf("expected the head to stall on the last frame, saw it %d times:\n%s", got, out)
	}
	requireContains(t, out, "5 ticks, final frame 2, playing")
}

func TestPlayRejectsBadFormat(t *testing.T) {
	configPath := writeConfig(t, testClipConfig)

	_, _, err := runCLI(t, []string{"play", "--format", "xml"}, configPath)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	requireContains(t, err.Error(), "unsupported value")
}

func TestPlayRejectsUnknownScriptLabel(t *testing.T) {
	configPath := writeConfig(t, testClipConfig+`
[[scripts]]
label = "outr"
action = "stop"
`)

	_, _, err := runCLI(t, []string{"play"}, configPath)
	if err == nil {
		t.Fatal("expected error for unknown script label")
	}
	requireContains(t, err.Error(), `did you mean "outro"?`)
}

func TestPlayTracesFramesAtDebug(t *testing.T) {
	configPath := writeConfig(t, testClipConfig+`
[logging]
level = "debug"
`)

	_, stderr, err := runCLI(t, []string{"play", "--ticks", "1"}, configPath)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if got := strings.Count(stderr, "frame rendered"); got != 2 {
		t.Fatalf("expected two traced renders on stderr, got %d:\n%s", got, stderr)
	}
}

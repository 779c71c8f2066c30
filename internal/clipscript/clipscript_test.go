package clipscript_test

import (
	"errors"
	"strings"
	"testing"

	"movieclip/internal/clipscript"
	"movieclip/internal/config"
	"movieclip/internal/logging"
	"movieclip/internal/movieclip"
	"movieclip/internal/testsupport"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"stop", "stop"},
		{"  PLAY ", "play"},
		{"reverse", "reverse"},
		{"goto_and_play 4", "goto_and_play 4"},
		{"goto_and_stop intro", `goto_and_stop "intro"`},
		{"log reached   the end", `log "reached the end"`},
	}
	for _, tt := range tests {
		got, err := clipscript.Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Fatalf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "jump", "stop now", "goto_and_play", "goto_and_stop a b", "log"} {
		if _, err := clipscript.Parse(in); !errors.Is(err, clipscript.ErrUnknownAction) {
			t.Fatalf("Parse(%q): expected ErrUnknownAction, got %v", in, err)
		}
	}
}

func TestParseTarget(t *testing.T) {
	if ref := clipscript.ParseTarget("7"); ref.IsLabel() || ref.Index() != 7 {
		t.Fatalf("expected frame 7, got %s", ref)
	}
	if ref := clipscript.ParseTarget(" outro "); !ref.IsLabel() || ref.LabelName() != "outro" {
		t.Fatalf("expected label outro, got %s", ref)
	}
}

func TestBindStopHaltsPlayback(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(4))
	binder := clipscript.NewBinder(logging.NewNop())
	binder.Bind(tl, movieclip.Frame(2), clipscript.Action{Kind: clipscript.KindStop})

	if err := tl.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := tl.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if tl.CurrentFrame != 2 || tl.IsPlaying() {
		t.Fatalf("expected stop at 2, got frame %d playing=%v", tl.CurrentFrame, tl.IsPlaying())
	}
	if binder.Fired() != 1 {
		t.Fatalf("expected one script run, got %d", binder.Fired())
	}
}

func TestBindPlaySkipsReentry(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(3))
	binder := clipscript.NewBinder(logging.NewNop())
	binder.Bind(tl, movieclip.Frame(0), clipscript.Action{Kind: clipscript.KindPlay})

	if err := tl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !tl.IsPlaying() {
		t.Fatal("expected play script to restart playback")
	}
	if binder.Fired() != 1 {
		t.Fatalf("expected re-entrant run to be skipped, got %d runs", binder.Fired())
	}
	if binder.Err() != nil {
		t.Fatalf("unexpected error: %v", binder.Err())
	}
}

func TestBindGotoChainsTerminate(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(5))
	binder := clipscript.NewBinder(logging.NewNop())
	binder.Bind(tl, movieclip.Frame(1), clipscript.Action{Kind: clipscript.KindGotoAndPlay, Target: movieclip.Frame(3)})
	binder.Bind(tl, movieclip.Frame(3), clipscript.Action{Kind: clipscript.KindGotoAndPlay, Target: movieclip.Frame(1)})

	if err := tl.GotoAndPlay(movieclip.Frame(1)); err != nil {
		t.Fatalf("GotoAndPlay: %v", err)
	}
	if tl.CurrentFrame != 1 {
		t.Fatalf("expected the chain to settle on frame 1, got %d", tl.CurrentFrame)
	}
	if binder.Fired() != 2 {
		t.Fatalf("expected each script to run once, got %d", binder.Fired())
	}
}

func TestBindReverseFlipsDirection(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(5))
	binder := clipscript.NewBinder(logging.NewNop())
	binder.Bind(tl, movieclip.Frame(2), clipscript.Action{Kind: clipscript.KindReverse})
	if err := tl.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := tl.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if !tl.Reverse || tl.CurrentFrame != 1 {
		t.Fatalf("expected reverse travel to frame 1, got frame %d reverse=%v", tl.CurrentFrame, tl.Reverse)
	}
}

func TestBindRecordsRendererFailure(t *testing.T) {
	boom := errors.New("boom")
	tl := movieclip.New(movieclip.WithTotalFrames(5))
	binder := clipscript.NewBinder(logging.NewNop())
	binder.Bind(tl, movieclip.Frame(1), clipscript.Action{Kind: clipscript.KindGotoAndStop, Target: movieclip.Frame(4)})
	if err := tl.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	tl.Renderer = movieclip.RendererFunc(func(tl *movieclip.Timeline) error {
		if tl.CurrentFrame == 4 {
			return boom
		}
		return nil
	})
	if err := tl.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !errors.Is(binder.Err(), boom) {
		t.Fatalf("expected recorded renderer error, got %v", binder.Err())
	}
	if tl.IsPlaying() {
		t.Fatal("expected failing script to stop the timeline")
	}
}

func TestBindConfig(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(10))
	if err := tl.AddLabelToFrame("outro", movieclip.Frame(7)); err != nil {
		t.Fatalf("AddLabelToFrame: %v", err)
	}
	cfg := testsupport.NewConfig(t, 10,
		testsupport.WithLabel("outro", 7),
		testsupport.WithFrameScript(2, "goto_and_play outro"),
		testsupport.WithLabelScript("outro", "stop"),
	)
	binder := clipscript.NewBinder(nil)
	if err := binder.BindConfig(tl, cfg.Scripts); err != nil {
		t.Fatalf("BindConfig: %v", err)
	}
	if got := tl.ScriptFrames(); len(got) != 2 || got[0] != 2 || got[1] != 7 {
		t.Fatalf("unexpected script frames %v", got)
	}
}

func TestBindConfigRejectsUnknownLabels(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(10))
	if err := tl.AddLabelToFrame("outro", movieclip.Frame(7)); err != nil {
		t.Fatalf("AddLabelToFrame: %v", err)
	}
	frame := 1
	tests := []struct {
		name    string
		script  config.Script
		wantErr string
	}{
		{"script label", config.Script{Label: "outr", Action: "stop"}, `did you mean "outro"`},
		{"goto target", config.Script{Frame: &frame, Action: "goto_and_stop zzz"}, `unknown label "zzz"`},
		{"bad action", config.Script{Frame: &frame, Action: "explode"}, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := clipscript.NewBinder(nil).BindConfig(tl, []config.Script{tt.script})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

package movieclip_test

import (
	"testing"

	"movieclip/internal/movieclip"
)

func TestFrameScriptCanStopTimeline(t *testing.T) {
	tl := movieclip.New()
	tl.TotalFrames = 2
	calls := 0
	tl.AddFrameScript(movieclip.Frame(1), func() {
		calls++
		tl.Stop()
	})
	mustPlay(t, tl)
	for i := 0; i < 3; i++ {
		mustTick(t, tl)
		if tl.CurrentFrame != 1 {
			t.Fatalf("tick %d: expected frame 1, got %d", i, tl.CurrentFrame)
		}
	}
	if calls != 1 {
		t.Fatalf("expected script to fire once, got %d", calls)
	}
}

func TestFrameScriptOverwrite(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(3))
	var fired []string
	tl.AddFrameScript(movieclip.Frame(1), func() { fired = append(fired, "first") })
	tl.AddFrameScript(movieclip.Frame(1), func() { fired = append(fired, "second") })
	if got := tl.ScriptFrames(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected one script at frame 1, got %v", got)
	}
	if err := tl.GotoAndStop(movieclip.Frame(1)); err != nil {
		t.Fatalf("GotoAndStop: %v", err)
	}
	if len(fired) != 1 || fired[0] != "second" {
		t.Fatalf("expected only the replacement to fire, got %v", fired)
	}
}

func TestFrameScriptResolvesClampedFrame(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(3))
	tl.AddFrameScript(movieclip.Frame(99), func() {})
	if !tl.HasFrameScript(movieclip.Frame(2)) {
		t.Fatal("expected out-of-range frame to clamp to the last frame")
	}
}

func TestRemoveFrameScript(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(2))
	calls := 0
	tl.AddFrameScript(movieclip.Frame(1), func() { calls++ })
	mustPlay(t, tl)
	mustTick(t, tl)
	if calls != 1 {
		t.Fatalf("expected script to fire once, got %d", calls)
	}

	tl.RemoveFrameScript(movieclip.Frame(1))
	tl.RemoveFrameScript(movieclip.Frame(1))
	if err := tl.GotoAndPlay(movieclip.Frame(0)); err != nil {
		t.Fatalf("GotoAndPlay: %v", err)
	}
	mustTick(t, tl)
	if calls != 1 {
		t.Fatalf("expected removed script to stay silent, got %d calls", calls)
	}
}

func TestAddNilFrameScriptRemoves(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(2))
	tl.AddFrameScript(movieclip.Frame(1), func() {})
	tl.AddFrameScript(movieclip.Frame(1), nil)
	if tl.HasFrameScript(movieclip.Frame(1)) {
		t.Fatal("expected nil script to remove the binding")
	}
}

func TestFrameScriptByLabel(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(10))
	if err := tl.AddLabelToFrame("loop", movieclip.Frame(6)); err != nil {
		t.Fatalf("AddLabelToFrame: %v", err)
	}
	tl.AddFrameScript(movieclip.Label("loop"), func() {})
	if got := tl.ScriptFrames(); len(got) != 1 || got[0] != 6 {
		t.Fatalf("expected script at frame 6, got %v", got)
	}
}

func TestFrameScriptMayMutateScripts(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(3))
	calls := 0
	tl.AddFrameScript(movieclip.Frame(1), func() {
		calls++
		tl.RemoveFrameScript(movieclip.Frame(1))
		tl.AddFrameScript(movieclip.Frame(2), func() { tl.Stop() })
	})
	mustPlay(t, tl)
	for i := 0; i < 4; i++ {
		mustTick(t, tl)
	}
	if calls != 1 {
		t.Fatalf("expected self-removing script to fire once, got %d", calls)
	}
	if tl.CurrentFrame != 2 || tl.IsPlaying() {
		t.Fatalf("expected stop at frame 2, got frame %d playing=%v", tl.CurrentFrame, tl.IsPlaying())
	}
}

func TestFrameScriptGotoFromScript(t *testing.T) {
	tl := movieclip.New(movieclip.WithTotalFrames(5))
	tl.AddFrameScript(movieclip.Frame(2), func() {
		if err := tl.GotoAndStop(movieclip.Frame(4)); err != nil {
			t.Errorf("GotoAndStop: %v", err)
		}
	})
	mustPlay(t, tl)
	mustTick(t, tl)
	mustTick(t, tl)
	mustTick(t, tl)
	if tl.CurrentFrame != 4 || tl.IsPlaying() {
		t.Fatalf("expected jump to frame 4 and stop, got frame %d playing=%v", tl.CurrentFrame, tl.IsPlaying())
	}
}

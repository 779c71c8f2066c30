package movieclip

import "movieclip/internal/logging"

// GotoAndPlay moves the head to ref and starts playing.
func (t *Timeline) GotoAndPlay(ref FrameRef) error {
	t.CurrentFrame = t.ValidateFrame(ref)
	return t.Play()
}

// GotoAndStop moves the head to ref, renders it once and stops.
func (t *Timeline) GotoAndStop(ref FrameRef) error {
	t.CurrentFrame = t.ValidateFrame(ref)
	if err := t.Render(); err != nil {
		return err
	}
	t.Stop()
	return nil
}

// Play renders the current frame and starts playback from it.
func (t *Timeline) Play() error {
	if err := t.Render(); err != nil {
		return err
	}
	t.playing = true
	t.StartRendering()
	return nil
}

// Stop halts playback and rendering.
func (t *Timeline) Stop() {
	t.playing = false
	t.StopRendering()
}

// StartRendering lets Tick render frames and fire scripts.
func (t *Timeline) StartRendering() { t.rendering = true }

// StopRendering lets the head advance silently.
func (t *Timeline) StopRendering() { t.rendering = false }

// Render presents the current frame, then fires the script registered at it.
// A renderer error is returned as-is and the script does not fire.
func (t *Timeline) Render() error {
	if t.Renderer != nil {
		if err := t.Renderer.RenderFrame(t); err != nil {
			return err
		}
	}
	if script, ok := t.scripts[t.CurrentFrame]; ok {
		script()
	}
	return nil
}

// Tick advances the head by one frame in the current direction. At a boundary
// a looping timeline wraps (or bounces when Yoyo is set); a non-looping one
// stays put and keeps playing until stopped.
func (t *Timeline) Tick() error {
	if !t.playing {
		return nil
	}
	if t.TotalFrames <= 0 {
		return nil
	}

	if t.Reverse {
		if t.CurrentFrame-1 < 0 {
			if t.Loop {
				if t.Yoyo {
					if t.TotalFrames > 1 {
						t.CurrentFrame++
					}
					t.Reverse = false
					t.logger.Debug("bounced at first frame", logging.Int(logging.FieldFrame, t.CurrentFrame))
				} else {
					t.CurrentFrame = t.TotalFrames - 1
					t.logger.Debug("wrapped to last frame", logging.Int(logging.FieldFrame, t.CurrentFrame))
				}
			}
		} else {
			t.CurrentFrame--
		}
	} else {
		if t.CurrentFrame+1 > t.TotalFrames-1 {
			if t.Loop {
				if t.Yoyo {
					if t.TotalFrames > 1 {
						t.CurrentFrame--
					}
					t.Reverse = true
					t.logger.Debug("bounced at last frame", logging.Int(logging.FieldFrame, t.CurrentFrame))
				} else {
					t.CurrentFrame = t.ValidateFrame(Frame(t.LoopFrame))
					t.logger.Debug("wrapped to loop frame", logging.Int(logging.FieldFrame, t.CurrentFrame))
				}
			}
		} else {
			t.CurrentFrame++
		}
	}

	if t.rendering {
		return t.Render()
	}
	return nil
}

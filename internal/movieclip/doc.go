// Package movieclip implements a frame-based timeline controller.
//
// A Timeline is a playback head over a finite run of frames. Callers drive it
// one Tick at a time; the timeline never owns a clock. Playback can run
// forwards or backwards, wrap around (loop), bounce between the ends (yoyo),
// and stall at a boundary when looping is disabled. Frames can carry named
// labels for semantic navigation and at most one script each, fired whenever
// the head renders that frame.
//
// Drawing is delegated to an injected Renderer. Everything runs synchronously
// on the caller's goroutine; a Timeline is not safe for concurrent use.
package movieclip

// Package player drives a movieclip.Timeline from outside.
//
// A Timeline has no clock of its own. Run plays the part of the external
// scheduler: it calls Tick a fixed number of times, either back to back or
// paced by a ticker, and stops early on cancellation or, if asked, once the
// timeline stops itself.
package player

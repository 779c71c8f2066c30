// Package render provides movieclip renderers that describe frames as text.
//
// Drawing real frame content is out of scope; these renderers report which
// frame the head rendered, the labelled section it falls in, and the play
// direction. Output can be a table collected over a whole run, a stream of
// JSON objects, or plain (optionally coloured) lines.
package render

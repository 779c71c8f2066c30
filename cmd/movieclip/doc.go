// Package main hosts the movieclip CLI.
//
// The Cobra command tree loads a clip description from TOML, builds a
// timeline with its labels and frame scripts, and drives it for a number of
// ticks while printing each rendered frame. It also inspects clips and
// scaffolds configuration files.
//
// Keep this package lean: behaviour belongs in the internal packages, and the
// commands here only wire configuration, flags, and output together.
package main

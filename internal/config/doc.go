// Package config loads, normalizes, and validates movieclip configuration.
//
// A configuration file describes one clip: its frame count and playback
// flags, the labels that mark its sections, declarative frame scripts, and
// how the CLI should drive and print it. Files are TOML; missing keys fall
// back to the repository defaults so an empty file is a valid (if empty)
// clip.
//
// Always obtain settings through Load so callers receive expanded paths,
// normalized label names, and clear validation errors.
package config

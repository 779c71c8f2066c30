package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClip(); err != nil {
		return err
	}
	if err := c.validateLabels(); err != nil {
		return err
	}
	if err := c.validateScripts(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateClip() error {
	if c.Clip.FPS < 0 {
		return errors.New("clip.fps must be positive")
	}
	if c.Clip.TotalFrames < 0 {
		return errors.New("clip.total_frames must be >= 0")
	}
	if c.Clip.StartFrame < 0 {
		return errors.New("clip.start_frame must be >= 0")
	}
	if c.Clip.LoopFrame < 0 {
		return errors.New("clip.loop_frame must be >= 0")
	}
	return nil
}

func (c *Config) validateLabels() error {
	seen := make(map[string]struct{}, len(c.Labels))
	for i, label := range c.Labels {
		if label.Name == "" {
			return fmt.Errorf("labels[%d].name must be set", i)
		}
		// Numeric targets in actions and --from always address frames.
		if _, err := strconv.Atoi(label.Name); err == nil {
			return fmt.Errorf("labels[%d].name %q must not be a frame number", i, label.Name)
		}
		if label.Frame < 0 {
			return fmt.Errorf("labels[%d].frame must be >= 0", i)
		}
		if _, ok := seen[label.Name]; ok {
			return fmt.Errorf("labels[%d]: duplicate label %q", i, label.Name)
		}
		seen[label.Name] = struct{}{}
	}
	return nil
}

func (c *Config) validateScripts() error {
	for i, script := range c.Scripts {
		hasFrame := script.Frame != nil
		hasLabel := script.Label != ""
		switch {
		case hasFrame && hasLabel:
			return fmt.Errorf("scripts[%d]: set either frame or label, not both", i)
		case !hasFrame && !hasLabel:
			return fmt.Errorf("scripts[%d]: frame or label must be set", i)
		}
		if script.Action == "" {
			return fmt.Errorf("scripts[%d].action must be set", i)
		}
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.Ticks < 0 {
		return errors.New("playback.ticks must be >= 0")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json", "plain":
	default:
		return fmt.Errorf("output.format: unsupported value %q (use table, json, or plain)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (use auto, always, or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

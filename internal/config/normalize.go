package config

import (
	"fmt"
	"strings"

	"movieclip/internal/textutil"
)

func (c *Config) normalize() error {
	c.normalizeClip()
	c.normalizeLabels()
	c.normalizeScripts()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeClip() {
	c.Clip.Name = strings.TrimSpace(c.Clip.Name)
	if c.Clip.FPS == 0 {
		c.Clip.FPS = defaultFPS
	}
}

func (c *Config) normalizeLabels() {
	for i := range c.Labels {
		c.Labels[i].Name = textutil.NormalizeLabel(c.Labels[i].Name)
	}
}

func (c *Config) normalizeScripts() {
	for i := range c.Scripts {
		c.Scripts[i].Label = textutil.NormalizeLabel(c.Scripts[i].Label)
		c.Scripts[i].Action = strings.TrimSpace(c.Scripts[i].Action)
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

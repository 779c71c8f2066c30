package config

const (
	defaultConfigPath   = "~/.config/movieclip/config.toml"
	projectConfigName   = "movieclip.toml"
	defaultFPS          = 30
	defaultLoop         = true
	defaultTicks        = 30
	defaultOutputFormat = "table"
	defaultOutputColor  = "auto"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Clip: Clip{
			FPS:  defaultFPS,
			Loop: defaultLoop,
		},
		Playback: Playback{
			Ticks: defaultTicks,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

const (
	defaultConfigPath         = "~/.config/lrcsync/config.toml"
	defaultDataDir            = "~/.local/share/lrcsync"
	defaultLyricsDir          = "~/.local/share/lrcsync/lyrics"
	defaultLogDir             = "~/.local/share/lrcsync/logs"
	defaultRecoveryIntervalMs = 1000
	defaultTickIntervalMs     = 100
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LyricsDir: defaultLyricsDir,
			LogDir:    defaultLogDir,
		},
		Sync: Sync{
			RecoveryIntervalMs: defaultRecoveryIntervalMs,
			TickIntervalMs:     defaultTickIntervalMs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

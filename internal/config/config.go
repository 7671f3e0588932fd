// Package config loads concierge configuration from defaults, a JSON config
// file, and CONCIERGE_* environment variables, in that override order.
package config

type Config struct {
	Server    ServerConfig
	Speech    SpeechConfig
	Knowledge KnowledgeConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port    int
	MCPPort int
	// APIToken guards /chat and /history; empty disables auth for
	// local-only setups.
	APIToken string
}

type SpeechConfig struct {
	// TimeoutSeconds bounds one voice listening attempt.
	TimeoutSeconds int
	// MaxRetries bounds voice attempts before the text fallback.
	MaxRetries int
	// Voice enables spoken output through Command.
	Voice bool
	// Command is the system text-to-speech binary.
	Command string
}

type KnowledgeConfig struct {
	// Path to a JSON knowledge file; empty uses the built-in data.
	Path string
}

type LogConfig struct {
	Level string
	// File is an additional append-only log sink; empty logs to stderr
	// only.
	File string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:    4700,
			MCPPort: 4701,
		},
		Speech: SpeechConfig{
			TimeoutSeconds: 8,
			MaxRetries:     3,
			Command:        "espeak",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON config file
// ($XDG_CONFIG_HOME/concierge/config.json, overridable via
// CONCIERGE_CONFIG) with environment variables applied last.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b backend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

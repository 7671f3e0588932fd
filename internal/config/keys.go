package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
	kBool
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	secret  bool
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "server.port", typ: kInt, env: "CONCIERGE_SERVER_PORT",
		apply:   func(cfg *Config, v any) { cfg.Server.Port = v.(int) },
		extract: func(cfg Config) any { return cfg.Server.Port },
	},
	{
		key: "server.mcp_port", typ: kInt, env: "CONCIERGE_SERVER_MCP_PORT",
		apply:   func(cfg *Config, v any) { cfg.Server.MCPPort = v.(int) },
		extract: func(cfg Config) any { return cfg.Server.MCPPort },
	},
	{
		key: "server.api_token", typ: kString, env: "CONCIERGE_API_TOKEN",
		secret:  true,
		apply:   func(cfg *Config, v any) { cfg.Server.APIToken = v.(string) },
		extract: func(cfg Config) any { return cfg.Server.APIToken },
	},
	{
		key: "speech.timeout_seconds", typ: kInt, env: "CONCIERGE_SPEECH_TIMEOUT_SECONDS",
		apply:   func(cfg *Config, v any) { cfg.Speech.TimeoutSeconds = v.(int) },
		extract: func(cfg Config) any { return cfg.Speech.TimeoutSeconds },
	},
	{
		key: "speech.max_retries", typ: kInt, env: "CONCIERGE_SPEECH_MAX_RETRIES",
		apply:   func(cfg *Config, v any) { cfg.Speech.MaxRetries = v.(int) },
		extract: func(cfg Config) any { return cfg.Speech.MaxRetries },
	},
	{
		key: "speech.voice", typ: kBool, env: "CONCIERGE_SPEECH_VOICE",
		apply:   func(cfg *Config, v any) { cfg.Speech.Voice = v.(bool) },
		extract: func(cfg Config) any { return cfg.Speech.Voice },
	},
	{
		key: "speech.command", typ: kString, env: "CONCIERGE_SPEECH_COMMAND",
		apply:   func(cfg *Config, v any) { cfg.Speech.Command = v.(string) },
		extract: func(cfg Config) any { return cfg.Speech.Command },
	},
	{
		key: "knowledge.path", typ: kString, env: "CONCIERGE_KNOWLEDGE_PATH",
		apply:   func(cfg *Config, v any) { cfg.Knowledge.Path = v.(string) },
		extract: func(cfg Config) any { return cfg.Knowledge.Path },
	},
	{
		key: "log.level", typ: kString, env: "CONCIERGE_LOG_LEVEL",
		apply:   func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.Level },
	},
	{
		key: "log.file", typ: kString, env: "CONCIERGE_LOG_FILE",
		apply:   func(cfg *Config, v any) { cfg.Log.File = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.File },
	},
}

func applyBackend(cfg *Config, b backend) error {
	for _, s := range specs {
		if s.secret {
			continue
		}
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kBool:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok && v != "" {
				bv, err := strconv.ParseBool(v)
				if err != nil {
					fmt.Fprintf(os.Stderr, "[WARN] could not parse bool from config key %s=%q: %v. Using default value.\n", s.key, v, err)
					continue
				}
				s.apply(cfg, bv)
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		v := os.Getenv(s.env)
		if v == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, v)
		case kInt:
			if i, err := strconv.Atoi(v); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] invalid integer in %s=%q, ignoring\n", s.env, v)
			}
		case kBool:
			if bv, err := strconv.ParseBool(v); err == nil {
				s.apply(cfg, bv)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] invalid bool in %s=%q, ignoring\n", s.env, v)
			}
		}
	}
}

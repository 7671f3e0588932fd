package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mapBackend is a test double for the backend interface.
type mapBackend struct {
	data map[string]any
}

func (m mapBackend) GetString(key string) (string, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (m mapBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return 0, false, nil
	}
	i, _ := v.(int)
	return i, true, nil
}

func (m mapBackend) SetString(key, val string) error { m.data[key] = val; return nil }
func (m mapBackend) SetInt(key string, val int) error { m.data[key] = val; return nil }

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range specs {
		t.Setenv(s.env, "")
	}
}

// TestDefaults verifies all default values when nothing else is set.
func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(mapBackend{data: map[string]any{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4700 {
		t.Errorf("Server.Port = %d, want 4700", cfg.Server.Port)
	}
	if cfg.Server.MCPPort != 4701 {
		t.Errorf("Server.MCPPort = %d, want 4701", cfg.Server.MCPPort)
	}
	if cfg.Speech.TimeoutSeconds != 8 {
		t.Errorf("Speech.TimeoutSeconds = %d, want 8", cfg.Speech.TimeoutSeconds)
	}
	if cfg.Speech.MaxRetries != 3 {
		t.Errorf("Speech.MaxRetries = %d, want 3", cfg.Speech.MaxRetries)
	}
	if cfg.Speech.Voice {
		t.Error("Speech.Voice = true, want false by default")
	}
	if cfg.Speech.Command != "espeak" {
		t.Errorf("Speech.Command = %q, want espeak", cfg.Speech.Command)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

// TestBackendOverridesDefaults verifies stored values win over defaults.
func TestBackendOverridesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(mapBackend{data: map[string]any{
		"server.port":        5700,
		"speech.max_retries": 5,
		"speech.voice":       "true",
		"knowledge.path":     "/tmp/kb.json",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 5700 {
		t.Errorf("Server.Port = %d, want 5700", cfg.Server.Port)
	}
	if cfg.Speech.MaxRetries != 5 {
		t.Errorf("Speech.MaxRetries = %d, want 5", cfg.Speech.MaxRetries)
	}
	if !cfg.Speech.Voice {
		t.Error("Speech.Voice = false, want true")
	}
	if cfg.Knowledge.Path != "/tmp/kb.json" {
		t.Errorf("Knowledge.Path = %q, want /tmp/kb.json", cfg.Knowledge.Path)
	}
}

// TestEnvOverride verifies environment variables win over stored values.
func TestEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONCIERGE_SERVER_PORT", "9999")
	t.Setenv("CONCIERGE_API_TOKEN", "env-token")
	t.Setenv("CONCIERGE_SPEECH_VOICE", "true")

	cfg, err := loadWith(mapBackend{data: map[string]any{
		"server.port": 5700,
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.APIToken != "env-token" {
		t.Errorf("Server.APIToken = %q, want env-token", cfg.Server.APIToken)
	}
	if !cfg.Speech.Voice {
		t.Error("Speech.Voice = false, want true")
	}
}

// TestSecretNeverReadFromBackend verifies the API token only comes from
// the environment, never the config file.
func TestSecretNeverReadFromBackend(t *testing.T) {
	clearEnv(t)

	cfg, err := loadWith(mapBackend{data: map[string]any{
		"server.api_token": "file-token",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.APIToken != "" {
		t.Errorf("Server.APIToken = %q, want empty", cfg.Server.APIToken)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("CONCIERGE_CONFIG", path)

	b := newFileBackend()
	if err := b.SetInt("server.port", 6100); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString("log.level", "debug"); err != nil {
		t.Fatal(err)
	}

	b2 := newFileBackend()
	port, ok, err := b2.GetInt("server.port")
	if err != nil || !ok || port != 6100 {
		t.Errorf("GetInt = (%d, %v, %v), want (6100, true, nil)", port, ok, err)
	}
	level, ok, err := b2.GetString("log.level")
	if err != nil || !ok || level != "debug" {
		t.Errorf("GetString = (%q, %v, %v), want (debug, true, nil)", level, ok, err)
	}
}

func TestFileBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("CONCIERGE_CONFIG", path)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	b := newFileBackend()
	_, ok, err := b.GetString("log.level")
	if err != nil || ok {
		t.Errorf("corrupt file should behave as empty, got ok=%v err=%v", ok, err)
	}
}

func TestSetKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("CONCIERGE_CONFIG", path)

	if err := SetKey("server.port", "7100"); err != nil {
		t.Fatal(err)
	}
	if err := SetKey("speech.voice", "true"); err != nil {
		t.Fatal(err)
	}

	clearEnv(t)
	t.Setenv("CONCIERGE_CONFIG", path)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100", cfg.Server.Port)
	}
	if !cfg.Speech.Voice {
		t.Error("Speech.Voice = false, want true")
	}
}

func TestSetKeyRejectsSecret(t *testing.T) {
	t.Setenv("CONCIERGE_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	err := SetKey("server.api_token", "sneaky")
	if err == nil {
		t.Fatal("expected error setting a secret key, got nil")
	}
	if !strings.Contains(err.Error(), "CONCIERGE_API_TOKEN") {
		t.Errorf("error = %q, want mention of the env var", err)
	}
}

func TestSetKeyUnknown(t *testing.T) {
	t.Setenv("CONCIERGE_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	if err := SetKey("no.such.key", "x"); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestSetKeyInvalidInt(t *testing.T) {
	t.Setenv("CONCIERGE_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	if err := SetKey("server.port", "lots"); err == nil {
		t.Fatal("expected error for non-integer port, got nil")
	}
}

func TestShowAllOmitsSecrets(t *testing.T) {
	for _, info := range ShowAll(defaults()) {
		if info.Key == "server.api_token" {
			t.Fatal("ShowAll leaked a secret key")
		}
	}
}

func TestValidKeys(t *testing.T) {
	keys := ValidKeys()
	if len(keys) == 0 {
		t.Fatal("no valid keys")
	}
	for _, k := range keys {
		if k == "server.api_token" {
			t.Error("secret key listed as settable")
		}
	}
}

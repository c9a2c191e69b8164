package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nbenliogludev/go-wordle-agent/internal/browser"
	"github.com/nbenliogludev/go-wordle-agent/internal/llm"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	cfg, err := LoadFrom(missing, envMap(map[string]string{"OPENAI_API_KEY": "sk-test"}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Provider != llm.ProviderOpenAI || cfg.Model != "o3-mini" {
		t.Fatalf("backend = %s/%s", cfg.Provider, cfg.Model)
	}
	if cfg.Driver != browser.DriverPlaywright || cfg.URL != browser.DefaultURL {
		t.Fatalf("board = %s %s", cfg.Driver, cfg.URL)
	}
	if cfg.MaxAttempts != 6 || cfg.MaxRejections != 10 {
		t.Fatalf("limits = %d/%d", cfg.MaxAttempts, cfg.MaxRejections)
	}
	if cfg.KeyDelay != 100*time.Millisecond || cfg.SettleDelay != 5*time.Second {
		t.Fatalf("delays = %s/%s", cfg.KeyDelay, cfg.SettleDelay)
	}
	if !cfg.HistoryEnabled() {
		t.Fatalf("history should be on by default")
	}
}

func TestLoadMissingKey(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := LoadFrom(missing, envMap(nil))
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}

	_, err = LoadFrom(missing, envMap(map[string]string{
		"LLM_PROVIDER":   "openrouter",
		"OPENAI_API_KEY": "sk-test",
	}))
	if err == nil || !strings.Contains(err.Error(), "OPENROUTER_API_KEY") {
		t.Fatalf("expected missing openrouter key error, got %v", err)
	}
}

func TestFileThenEnv(t *testing.T) {
	path := writeFile(t, `
[llm]
provider = "openrouter"
model = "deepseek/deepseek-r1"

[browser]
driver = "Offline"
headless = true
key-delay = "50ms"
settle-delay = "2s"

[game]
max-attempts = 4
answer = "crane"

[history]
db = "off"
`)
	cfg, err := LoadFrom(path, envMap(map[string]string{
		"OPENROUTER_API_KEY": "or-test",
		"MAX_ATTEMPTS":       "5",
		"LLM_MODEL":          "",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Provider != llm.ProviderOpenRouter || cfg.Model != "deepseek/deepseek-r1" {
		t.Fatalf("backend = %s/%s", cfg.Provider, cfg.Model)
	}
	if cfg.Driver != browser.DriverOffline || !cfg.Headless || cfg.Answer != "crane" {
		t.Fatalf("board = %+v", cfg.BoardOptions())
	}
	if cfg.KeyDelay != 50*time.Millisecond || cfg.SettleDelay != 2*time.Second {
		t.Fatalf("delays = %s/%s", cfg.KeyDelay, cfg.SettleDelay)
	}
	if cfg.MaxAttempts != 5 {
		t.Fatalf("env should override file, got %d", cfg.MaxAttempts)
	}
	if cfg.HistoryEnabled() {
		t.Fatalf("history should be off")
	}

	b, err := cfg.LLMBackend()
	if err != nil {
		t.Fatalf("LLMBackend: %v", err)
	}
	if b.APIKey != "or-test" || b.Headers["X-Title"] == "" {
		t.Fatalf("backend = %+v", b)
	}
}

func TestEnvParseErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := LoadFrom(missing, envMap(map[string]string{
		"OPENAI_API_KEY": "sk-test",
		"HEADLESS":       "maybe",
		"KEY_DELAY":      "fast",
	}))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	for _, key := range []string{"HEADLESS", "KEY_DELAY"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not name %s", err, key)
		}
	}
}

func TestValidate(t *testing.T) {
	base := Default()
	base.Credentials.OpenAI = "sk-test"
	if err := base.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := base
	bad.Driver = "selenium"
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown driver accepted")
	}

	bad = base
	bad.MaxAttempts = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("zero attempts accepted")
	}

	bad = base
	bad.MaxRejections = -1
	if err := bad.Validate(); err == nil {
		t.Fatalf("negative rejections accepted")
	}
}

func TestBadFile(t *testing.T) {
	path := writeFile(t, "[llm\nprovider = ")
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected decode error")
	}

	path = writeFile(t, "[llm]\nprovider = \"anthropic\"\n")
	if _, err := LoadFrom(path, envMap(map[string]string{"OPENAI_API_KEY": "sk-test"})); err == nil {
		t.Fatalf("expected unknown provider error")
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "wordle-agent", "config.toml") {
		t.Fatalf("DefaultConfigPath = %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "wordle-agent", "history.db") {
		t.Fatalf("DefaultDBPath = %s", got)
	}
}

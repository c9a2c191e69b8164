// Package config assembles the run configuration from defaults, an optional
// TOML file and the environment (including a .env file), in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nbenliogludev/go-wordle-agent/internal/browser"
	"github.com/nbenliogludev/go-wordle-agent/internal/llm"
)

// HistoryOff disables the game history database.
const HistoryOff = "off"

type Config struct {
	Provider    llm.Provider
	Model       string
	Credentials llm.Credentials

	Driver      string
	URL         string
	Headless    bool
	KeyDelay    time.Duration
	SettleDelay time.Duration
	ProfileDir  string

	MaxAttempts   int
	MaxRejections int
	Answer        string

	HistoryDB string
	LogLevel  string
}

func Default() Config {
	return Config{
		Provider:      llm.ProviderOpenAI,
		Model:         llm.DefaultModel,
		Driver:        browser.DriverPlaywright,
		URL:           browser.DefaultURL,
		KeyDelay:      100 * time.Millisecond,
		SettleDelay:   5 * time.Second,
		ProfileDir:    DefaultProfileDir(),
		MaxAttempts:   6,
		MaxRejections: 10,
		HistoryDB:     DefaultDBPath(),
		LogLevel:      "info",
	}
}

// Load reads .env, then WORDLE_CONFIG (or the default TOML path), then the
// process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("WORDLE_CONFIG")
	if path == "" {
		path = DefaultConfigPath()
	}
	return LoadFrom(path, os.LookupEnv)
}

// LoadFrom is Load with an explicit file path and environment lookup.
func LoadFrom(path string, lookup func(string) (string, bool)) (Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := cfg.applyFile(fc); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc FileConfig) error {
	if fc.LLM.Provider != nil {
		p, err := llm.ParseProvider(*fc.LLM.Provider)
		if err != nil {
			return err
		}
		c.Provider = p
	}
	setString(&c.Model, fc.LLM.Model)
	setString(&c.Driver, fc.Browser.Driver)
	c.Driver = strings.ToLower(c.Driver)
	setString(&c.URL, fc.Browser.URL)
	setString(&c.ProfileDir, fc.Browser.ProfileDir)
	setString(&c.Answer, fc.Game.Answer)
	setString(&c.HistoryDB, fc.History.DB)
	if fc.Browser.Headless != nil {
		c.Headless = *fc.Browser.Headless
	}
	if fc.Game.MaxAttempts != nil {
		c.MaxAttempts = *fc.Game.MaxAttempts
	}
	if fc.Game.MaxRejections != nil {
		c.MaxRejections = *fc.Game.MaxRejections
	}
	if fc.Browser.KeyDelay != nil {
		d, err := time.ParseDuration(*fc.Browser.KeyDelay)
		if err != nil {
			return fmt.Errorf("browser.key-delay: %w", err)
		}
		c.KeyDelay = d
	}
	if fc.Browser.SettleDelay != nil {
		d, err := time.ParseDuration(*fc.Browser.SettleDelay)
		if err != nil {
			return fmt.Errorf("browser.settle-delay: %w", err)
		}
		c.SettleDelay = d
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("LLM_PROVIDER"); ok {
		p, err := llm.ParseProvider(v)
		if err != nil {
			return err
		}
		c.Provider = p
	}
	if v, ok := get("LLM_MODEL"); ok {
		c.Model = v
	}
	if v, ok := get("OPENAI_API_KEY"); ok {
		c.Credentials.OpenAI = v
	}
	if v, ok := get("OPENROUTER_API_KEY"); ok {
		c.Credentials.OpenRouter = v
	}
	if v, ok := get("WORDLE_URL"); ok {
		c.URL = v
	}
	if v, ok := get("BROWSER_DRIVER"); ok {
		c.Driver = strings.ToLower(v)
	}
	if v, ok := get("WORDLE_ANSWER"); ok {
		c.Answer = v
	}
	if v, ok := get("HISTORY_DB"); ok {
		c.HistoryDB = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	var errs []error
	if v, ok := get("HEADLESS"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrapKey("HEADLESS", err))
		c.Headless = b
	}
	if v, ok := get("MAX_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrapKey("MAX_ATTEMPTS", err))
		c.MaxAttempts = n
	}
	if v, ok := get("MAX_REJECTIONS"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrapKey("MAX_REJECTIONS", err))
		c.MaxRejections = n
	}
	if v, ok := get("KEY_DELAY"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrapKey("KEY_DELAY", err))
		c.KeyDelay = d
	}
	if v, ok := get("SETTLE_DELAY"); ok {
		d, err := time.ParseDuration(v)
		errs = append(errs, wrapKey("SETTLE_DELAY", err))
		c.SettleDelay = d
	}
	return errors.Join(errs...)
}

// Validate rejects settings the agent cannot run with.
func (c Config) Validate() error {
	switch c.Driver {
	case browser.DriverPlaywright, browser.DriverChromedp, browser.DriverOffline:
	default:
		return fmt.Errorf("unknown browser driver %q (want playwright, chromedp or offline)", c.Driver)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.MaxRejections <= 0 {
		return fmt.Errorf("max rejections must be positive, got %d", c.MaxRejections)
	}
	if c.KeyDelay < 0 || c.SettleDelay <= 0 {
		return fmt.Errorf("invalid delays: key %s, settle %s", c.KeyDelay, c.SettleDelay)
	}
	if _, err := c.LLMBackend(); err != nil {
		return err
	}
	return nil
}

// LLMBackend resolves the selected chat-completion backend.
func (c Config) LLMBackend() (llm.Backend, error) {
	return llm.ResolveBackend(c.Provider, c.Model, c.Credentials)
}

func (c Config) BoardOptions() browser.Options {
	return browser.Options{
		URL:         c.URL,
		Headless:    c.Headless,
		KeyDelay:    c.KeyDelay,
		SettleDelay: c.SettleDelay,
		UserDataDir: c.ProfileDir,
		Answer:      c.Answer,
	}
}

// HistoryEnabled reports whether games are persisted.
func (c Config) HistoryEnabled() bool {
	return c.HistoryDB != "" && !strings.EqualFold(c.HistoryDB, HistoryOff)
}

func setString(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}

func wrapKey(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", key, err)
}

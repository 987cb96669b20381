package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective missionctl configuration.
type Config struct {
	Launch  LaunchConfig  `toml:"launch"`
	News    NewsConfig    `toml:"news"`
	Chat    ChatConfig    `toml:"chat"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// LaunchConfig points the countdown at the launch schedule provider.
type LaunchConfig struct {
	APIURL          string `toml:"api_url"`
	Limit           int    `toml:"limit"`
	RequestsPerHour int    `toml:"requests_per_hour"`
}

// NewsConfig points the feed at the news provider.
type NewsConfig struct {
	APIURL string `toml:"api_url"`
	Limit  int    `toml:"limit"`
}

// ChatConfig selects and configures the chat backend.
type ChatConfig struct {
	Backend        string `toml:"backend"`
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

// DisplayConfig tunes the starfield and clocks.
type DisplayConfig struct {
	Stars           int    `toml:"stars"`
	Seed            int64  `toml:"seed"`
	FPS             int    `toml:"fps"`
	LocalTimeFormat string `toml:"local_time_format"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Chat backend names.
const (
	BackendHTTP    = "http"
	BackendOpenAI  = "openai"
	BackendOffline = "offline"
)

const (
	defaultConfigPath = "~/.config/missionctl/config.toml"

	defaultLaunchURL       = "https://lldev.thespacedevs.com/2.2.0/launch/upcoming/"
	defaultLaunchLimit     = 5
	defaultRequestsPerHour = 15
	defaultNewsURL         = "https://api.spaceflightnewsapi.net/v4/articles/"
	defaultNewsLimit       = 3
	defaultChatEndpoint    = "http://127.0.0.1:8000/api/chat"
	defaultChatTimeout     = 10
	defaultChatModel       = "gpt-4o-mini"
	defaultStars           = 200
	defaultFPS             = 30
	defaultLogFile         = "~/.local/state/missionctl/missionctl.log"
	defaultLogLevel        = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. Blank or non-positive fields also take their defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	switch c.Chat.Backend {
	case BackendHTTP, BackendOpenAI, BackendOffline:
	default:
		return fmt.Errorf("chat backend %q: want %s, %s or %s", c.Chat.Backend, BackendHTTP, BackendOpenAI, BackendOffline)
	}
	return nil
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	redacted := c
	if redacted.Chat.APIKey != "" {
		redacted.Chat.APIKey = "********"
	}
	out, err := toml.Marshal(redacted)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

func (c *Config) applyDefaults() {
	c.Launch.APIURL = orDefault(c.Launch.APIURL, defaultLaunchURL)
	if c.Launch.Limit <= 0 {
		c.Launch.Limit = defaultLaunchLimit
	}
	if c.Launch.RequestsPerHour == 0 {
		c.Launch.RequestsPerHour = defaultRequestsPerHour
	}

	c.News.APIURL = orDefault(c.News.APIURL, defaultNewsURL)
	if c.News.Limit <= 0 {
		c.News.Limit = defaultNewsLimit
	}

	c.Chat.Backend = strings.ToLower(orDefault(c.Chat.Backend, BackendHTTP))
	c.Chat.Endpoint = orDefault(c.Chat.Endpoint, defaultChatEndpoint)
	if c.Chat.TimeoutSeconds <= 0 {
		c.Chat.TimeoutSeconds = defaultChatTimeout
	}
	c.Chat.Model = orDefault(c.Chat.Model, defaultChatModel)
	c.Chat.APIKey = strings.TrimSpace(c.Chat.APIKey)
	c.Chat.BaseURL = strings.TrimSpace(c.Chat.BaseURL)

	if c.Display.Stars < 0 {
		c.Display.Stars = 0
	} else if c.Display.Stars == 0 {
		c.Display.Stars = defaultStars
	}
	if c.Display.FPS <= 0 {
		c.Display.FPS = defaultFPS
	}
	c.Display.LocalTimeFormat = strings.TrimSpace(c.Display.LocalTimeFormat)

	c.Log.File = mustExpand(orDefault(c.Log.File, defaultLogFile))
	c.Log.Level = strings.ToLower(orDefault(c.Log.Level, defaultLogLevel))
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

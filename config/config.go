package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the HTTP bind address.
type Server struct {
	Bind string `toml:"bind"`
}

// Storage contains the content database location.
type Storage struct {
	Path     string `toml:"path"`
	InMemory bool   `toml:"in_memory"`
}

// AI contains the enrichment service connection settings.
type AI struct {
	Host               string `toml:"host"`
	TranscriptionHost  string `toml:"transcription_host"`
	ClassifierModel    string `toml:"classifier_model"`
	VisionModel        string `toml:"vision_model"`
	TranscriptionModel string `toml:"transcription_model"`
	Language           string `toml:"language"`
	APIToken           string `toml:"api_token"`
}

// Platform contains the upstream media platform settings.
type Platform struct {
	AccessToken string `toml:"access_token"`
	BaseURL     string `toml:"base_url"`
	Simulated   bool   `toml:"simulated"`
}

// Batch contains batch enrichment settings.
type Batch struct {
	PoolSize int `toml:"pool_size"`
}

// Logging contains log output settings.
type Logging struct {
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for recollect.
type Config struct {
	Server   Server   `toml:"server"`
	Storage  Storage  `toml:"storage"`
	AI       AI       `toml:"ai"`
	Platform Platform `toml:"platform"`
	Batch    Batch    `toml:"batch"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  Server{Bind: "127.0.0.1:8080"},
		Storage: Storage{Path: "~/.local/share/recollect/db"},
		AI: AI{
			Host:               "http://localhost:11434",
			ClassifierModel:    "qwen2.5:3b",
			VisionModel:        "llava:13b",
			TranscriptionModel: "whisper-1",
			Language:           "es",
			APIToken:           "none",
		},
		Platform: Platform{Simulated: true},
		Batch:    Batch{PoolSize: 0}, // 0 means pick from CPU count
		Logging:  Logging{Level: "info"},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/recollect/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// means the default location; a missing file yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	storagePath, err := ExpandPath(c.Storage.Path)
	if err != nil {
		return fmt.Errorf("resolve storage path: %w", err)
	}
	c.Storage.Path = storagePath
	return nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must not be empty")
	}
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return errors.New("storage.path must be set when not in memory")
	}
	if c.AI.Host == "" {
		return errors.New("ai.host must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	if !c.Platform.Simulated && c.Platform.AccessToken == "" {
		return errors.New("platform.access_token required when not simulated")
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}

package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/amishk599/postings/internal/model"
)

// Storage backend names accepted in storage.type.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Config is the root configuration for the postings browser.
type Config struct {
	Storage StorageConfig
	Catalog string // optional YAML catalog path; empty means the built-in seed
	Display DisplayConfig
}

// StorageConfig selects where the applied set is kept.
type StorageConfig struct {
	Type string `yaml:"type"` // "sqlite", "file" or "memory"
	Path string `yaml:"path"` // database or JSON file path
}

// DisplayConfig controls listing defaults.
type DisplayConfig struct {
	DefaultSort   model.SortMode
	Locale        language.Tag // title collation
	RelativeDates bool         // append "3 days ago" to added dates
}

// rawConfig is used for YAML unmarshaling (snake_case fields, locale as string).
type rawConfig struct {
	Storage StorageConfig    `yaml:"storage"`
	Catalog string           `yaml:"catalog"`
	Display rawDisplayConfig `yaml:"display"`
}

type rawDisplayConfig struct {
	DefaultSort   string `yaml:"default_sort"`
	Locale        string `yaml:"locale"`
	RelativeDates *bool  `yaml:"relative_dates"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Type: StorageSQLite, Path: "postings.db"},
		Display: DisplayConfig{
			DefaultSort:   model.SortNewest,
			Locale:        language.English,
			RelativeDates: true,
		},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Storage.Type != "" {
		cfg.Storage.Type = raw.Storage.Type
		cfg.Storage.Path = defaultPath(raw.Storage.Type)
	}
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	cfg.Catalog = raw.Catalog

	if raw.Display.DefaultSort != "" {
		cfg.Display.DefaultSort = model.SortMode(raw.Display.DefaultSort)
	}
	if raw.Display.Locale != "" {
		tag, err := language.Parse(raw.Display.Locale)
		if err != nil {
			return nil, fmt.Errorf("parse display.locale %q: %w", raw.Display.Locale, err)
		}
		cfg.Display.Locale = tag
	}
	if raw.Display.RelativeDates != nil {
		cfg.Display.RelativeDates = *raw.Display.RelativeDates
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultPath(storageType string) string {
	switch storageType {
	case StorageFile:
		return "postings.json"
	case StorageMemory:
		return ""
	default:
		return "postings.db"
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Type {
	case StorageSQLite, StorageFile:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required when type is %q", cfg.Storage.Type)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage.type must be one of sqlite, file, memory, got %q", cfg.Storage.Type)
	}

	if !cfg.Display.DefaultSort.Valid() {
		return fmt.Errorf("display.default_sort must be one of newest, title, title_desc, got %q", cfg.Display.DefaultSort)
	}

	return nil
}

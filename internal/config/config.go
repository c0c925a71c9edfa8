package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	SectionHome   = "home"
	SectionNews   = "news"
	SectionEvents = "events"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
)

type Config struct {
	SchoolName     string `yaml:"school_name"`
	PageSizeValue  int    `yaml:"page_size"`
	ContentFile    string `yaml:"content_file"`
	DefaultSection string `yaml:"default_section"`
	ReportURL      string `yaml:"report_url"`
	LogLevel       string `yaml:"log_level"`
}

// PageSize returns the configured page size, defaulting to 6.
func (c *Config) PageSize() int {
	if c.PageSizeValue <= 0 {
		return defaultPageSize
	}
	return c.PageSizeValue
}

// Section returns the startup section, defaulting to home.
func (c *Config) Section() string {
	switch c.DefaultSection {
	case SectionNews, SectionEvents:
		return c.DefaultSection
	default:
		return SectionHome
	}
}

func (c *Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "campusnews", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.DataHome, "campusnews", "prefs.db")
}

func LogDir() string {
	return filepath.Join(xdg.StateHome, "campusnews")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default path). On first run the
// embedded defaults are written out and returned. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults are enough to run.
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.PageSizeValue < 1 || cfg.PageSizeValue > maxPageSize {
		return fmt.Errorf("page_size must be between 1 and %d, got %d", maxPageSize, cfg.PageSizeValue)
	}

	switch cfg.DefaultSection {
	case "", SectionHome, SectionNews, SectionEvents:
	default:
		return fmt.Errorf("unknown default_section %q (valid: home, news, events)", cfg.DefaultSection)
	}

	if cfg.ReportURL != "" {
		u, err := url.Parse(cfg.ReportURL)
		if err != nil {
			return fmt.Errorf("invalid report_url: %w", err)
		}
		switch u.Scheme {
		case "http", "https", "mailto":
		default:
			return fmt.Errorf("report_url scheme must be http, https or mailto, got %q", u.Scheme)
		}
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds CMS connection and publishing settings.
type Config struct {
	URL         string `yaml:"url"                    mapstructure:"url"`
	Email       string `yaml:"email"                  mapstructure:"email"`
	Password    string `yaml:"password"               mapstructure:"password"`
	SiteOrigin  string `yaml:"site_origin,omitempty"  mapstructure:"site_origin"`
	BlogDir     string `yaml:"blog_dir,omitempty"     mapstructure:"blog_dir"`
	AuthorName  string `yaml:"author_name,omitempty"  mapstructure:"author_name"`
	AuthorBio   string `yaml:"author_bio,omitempty"   mapstructure:"author_bio"`
	SourceAgent string `yaml:"source_agent,omitempty" mapstructure:"source_agent"`
	LogLevel    string `yaml:"log_level,omitempty"    mapstructure:"log_level"`
	EnvFile     string `yaml:"env_file,omitempty"     mapstructure:"env_file"`
}

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultURL         = "https://ivco.ai"
	DefaultBlogDir     = "docs/blog"
	DefaultAuthorName  = "IVCO Fisher"
	DefaultSourceAgent = "fisher"
	DefaultLogLevel    = "info"
	DefaultAuthorBio   = "I don't predict markets. I study businesses. IVCO Fisher is the public voice of the IVCO project, " +
		"an open-source research engine that integrates Graham, Buffett, Fisher, and Munger into a single calibration pipeline."
)

// DefaultPath returns the default config file path (~/.blogsync.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".blogsync.yaml"
	}
	return filepath.Join(home, ".blogsync.yaml")
}

// DefaultEnvFile returns the default credentials env file
// (~/.config/env/payload-admin.env).
func DefaultEnvFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "payload-admin.env"
	}
	return filepath.Join(home, ".config", "env", "payload-admin.env")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path. Variables from the
// credentials env file are loaded first; variables already present in the
// process environment take precedence over it.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("url", DefaultURL)
	v.SetDefault("blog_dir", DefaultBlogDir)
	v.SetDefault("author_name", DefaultAuthorName)
	v.SetDefault("author_bio", DefaultAuthorBio)
	v.SetDefault("source_agent", DefaultSourceAgent)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("env_file", DefaultEnvFile())

	// Env var overrides
	v.BindEnv("url", "PAYLOAD_URL")
	v.BindEnv("email", "PAYLOAD_ADMIN_EMAIL")
	v.BindEnv("password", "PAYLOAD_ADMIN_PASSWORD")
	v.BindEnv("site_origin", "BLOGSYNC_SITE_ORIGIN")
	v.BindEnv("blog_dir", "BLOGSYNC_BLOG_DIR")
	v.BindEnv("log_level", "BLOGSYNC_LOG_LEVEL")
	v.BindEnv("env_file", "BLOGSYNC_ENV_FILE")

	// Read the config file (ignore "not found" errors so env vars still work)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := loadEnvFile(v.GetString("env_file")); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.SiteOrigin == "" {
		cfg.SiteOrigin = cfg.URL
	}

	return cfg, nil
}

// loadEnvFile populates the process environment from a dotenv file. A missing
// file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Validate checks that required fields are present.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("CMS URL is required (set in config file or PAYLOAD_URL env var)")
	}
	if c.Email == "" {
		return fmt.Errorf("admin email is required (set in config file or PAYLOAD_ADMIN_EMAIL env var)")
	}
	if c.Password == "" {
		return fmt.Errorf("admin password is required (set in config file or PAYLOAD_ADMIN_PASSWORD env var)")
	}
	return c.ValidateOrigin()
}

// ValidateOrigin checks that the site origin is an absolute http(s) URL. The
// converter needs only this part of the config.
func (c Config) ValidateOrigin() error {
	u, err := url.Parse(c.SiteOrigin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("site origin %q must be an absolute http(s) URL", c.SiteOrigin)
	}
	return nil
}

// ReadFile reads the config file as stored, without defaults or env
// overrides. A missing file yields an empty Config.
func ReadFile(configPath string) (Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// UpdateCredentials sets the CMS URL, email and password in the config file
// and keeps every other stored key.
func UpdateCredentials(configPath, cmsURL, email, password string) (Config, error) {
	cfg, err := ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}
	cfg.URL = cmsURL
	cfg.Email = email
	cfg.Password = password

	check := cfg
	if check.SiteOrigin == "" {
		check.SiteOrigin = check.URL
	}
	if err := check.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := Save(cfg, configPath); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

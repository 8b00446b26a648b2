package cmd

import (
	"fmt"
	"os"

	"github.com/ivco-ai/blogsync/internal/config"
	"github.com/ivco-ai/blogsync/internal/markdown"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	appConfig config.Config
	log       = logrus.New()
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "blogsync",
	Short:   "Markdown blog -> Payload CMS publishing tool",
	Long:    `A CLI tool for converting markdown blog articles (with frontmatter) into Payload CMS posts: Lexical rich-text content, FAQ records and taxonomy, published through the CMS REST API.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.blogsync.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// loadConfig loads configuration and sets the log level. Commands that talk
// to the CMS pass requireCredentials.
func loadConfig(requireCredentials bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)

	validate := cfg.ValidateOrigin
	if requireCredentials {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'blogsync config' to set up credentials", err)
	}

	appConfig = cfg
	return nil
}

// newConverter builds a converter resolving links against the configured
// site origin.
func newConverter() (*markdown.Converter, error) {
	sanitizer, err := markdown.NewURLSanitizer(appConfig.SiteOrigin)
	if err != nil {
		return nil, err
	}
	return markdown.NewConverter(sanitizer), nil
}

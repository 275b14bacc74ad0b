package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Default extraction limits
	DefaultMaxPages            = 10
	DefaultMaxCharsPerPage     = 5000
	DefaultMaxCharsPerDocument = 15000

	// Conventional documents subfolder
	DefaultDocsSubdir = "docs"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the market trend analyzer server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Document analysis configuration
	DocsDirectory       string
	MaxFileSize         int64 // Maximum document file size in bytes
	MaxPages            int   // Page cap per document
	MaxCharsPerPage     int   // Character cap per page
	MaxCharsPerDocument int   // Character cap per document

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:                ModeStdio, // Default to stdio mode for MCP compatibility
		Host:                DefaultHost,
		Port:                DefaultPort,
		DocsDirectory:       filepath.Join(currentDir, DefaultDocsSubdir),
		MaxFileSize:         DefaultMaxFileSize,
		MaxPages:            DefaultMaxPages,
		MaxCharsPerPage:     DefaultMaxCharsPerPage,
		MaxCharsPerDocument: DefaultMaxCharsPerDocument,
		Version:             "1.0.0",
		ServerName:          "market-trend-analyzer",
		LogLevel:            DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.DocsDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DocsDirectory); err == nil {
			cfg.DocsDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("TREND")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("docsdir", cfg.DocsDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("maxpages", cfg.MaxPages)
	viper.SetDefault("maxcharsperpage", cfg.MaxCharsPerPage)
	viper.SetDefault("maxcharsperdocument", cfg.MaxCharsPerDocument)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("docsdir", cfg.DocsDirectory, "Directory containing documents to analyze")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
	pflag.Int("maxpages", cfg.MaxPages, "Maximum pages extracted per document")
	pflag.Int("maxcharsperpage", cfg.MaxCharsPerPage, "Maximum characters extracted per page")
	pflag.Int("maxcharsperdocument", cfg.MaxCharsPerDocument, "Maximum characters extracted per document")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("docsdir", pflag.Lookup("docsdir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("maxpages", pflag.Lookup("maxpages"))
	_ = viper.BindPFlag("maxcharsperpage", pflag.Lookup("maxcharsperpage"))
	_ = viper.BindPFlag("maxcharsperdocument", pflag.Lookup("maxcharsperdocument"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMarket Trend Analyzer - An MCP server for trend analysis tools\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  "+
			"# stdio mode, ./docs directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --docsdir=/path/to/docs          "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --maxpages=20 --maxcharsperdocument=30000 # larger extraction caps\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TREND_MODE                 Server mode\n")
		fmt.Fprintf(os.Stderr, "  TREND_HOST                 Server host\n")
		fmt.Fprintf(os.Stderr, "  TREND_PORT                 Server port\n")
		fmt.Fprintf(os.Stderr, "  TREND_DOCSDIR              Documents directory\n")
		fmt.Fprintf(os.Stderr, "  TREND_LOGLEVEL             Log level\n")
		fmt.Fprintf(os.Stderr, "  TREND_MAXFILESIZE          Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  TREND_MAXPAGES             Page cap per document\n")
		fmt.Fprintf(os.Stderr, "  TREND_MAXCHARSPERPAGE      Character cap per page\n")
		fmt.Fprintf(os.Stderr, "  TREND_MAXCHARSPERDOCUMENT  Character cap per document\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DocsDirectory = viper.GetString("docsdir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.MaxPages = viper.GetInt("maxpages")
	cfg.MaxCharsPerPage = viper.GetInt("maxcharsperpage")
	cfg.MaxCharsPerDocument = viper.GetInt("maxcharsperdocument")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate documents directory
	if c.DocsDirectory == "" {
		return errors.New("documents directory cannot be empty")
	}

	// Check if documents directory exists, create if it doesn't
	if _, err := os.Stat(c.DocsDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.DocsDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create documents directory %s: %w", c.DocsDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access documents directory %s: %w", c.DocsDirectory, err)
	}

	// Validate size and extraction limits
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}
	if c.MaxPages <= 0 {
		return errors.New("maximum pages must be positive")
	}
	if c.MaxCharsPerPage <= 0 {
		return errors.New("maximum characters per page must be positive")
	}
	if c.MaxCharsPerDocument <= 0 {
		return errors.New("maximum characters per document must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, DocsDirectory: %s, LogLevel: %s, "+
		"MaxFileSize: %d, MaxPages: %d, MaxCharsPerPage: %d, MaxCharsPerDocument: %d}",
		c.Mode, c.Host, c.Port, c.DocsDirectory, c.LogLevel,
		c.MaxFileSize, c.MaxPages, c.MaxCharsPerPage, c.MaxCharsPerDocument)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// Limits returns the extraction caps as a value object for call sites.
func (c *Config) Limits() (maxPages, maxCharsPerPage, maxCharsPerDocument int) {
	return c.MaxPages, c.MaxCharsPerPage, c.MaxCharsPerDocument
}

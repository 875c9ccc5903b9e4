package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	DataDir          string        `mapstructure:"data_dir"`
	ExportDir        string        `mapstructure:"export_dir"`
	ChromePath       string        `mapstructure:"chrome_path"`
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
	DefaultTemplate  string        `mapstructure:"default_template"`
	DefaultTheme     string        `mapstructure:"default_theme"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".resumeforge")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("data_dir", configDir)
	viper.SetDefault("export_dir", "")
	viper.SetDefault("chrome_path", "")
	viper.SetDefault("autosave_interval", "30s")
	viper.SetDefault("default_template", "modern")
	viper.SetDefault("default_theme", "#0972d3")

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Resumeforge Configuration

# Where the resume database lives. Defaults to ~/.resumeforge
data_dir: ""

# Where exported files are written. Empty means the current directory.
export_dir: ""

# Path to a Chrome/Chromium binary for PDF export. Empty means auto-detect.
chrome_path: ""

# How often the interactive editor saves in the background.
autosave_interval: 30s

# Presentation defaults for new resumes: modern, classic, executive
default_template: modern
default_theme: "#0972d3"
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".resumeforge", "config.yaml")
}

// DataDir returns the directory holding the database, falling back to
// ~/.resumeforge when unset.
func DataDir() string {
	if AppConfig != nil && AppConfig.DataDir != "" {
		return AppConfig.DataDir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".resumeforge")
}

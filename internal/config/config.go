package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "NOTECAL"

// Config holds the unified application configuration
type Config struct {
	DataDir    string
	StorageKey string
	StartView  string
	TrimRows   bool
	ConfigFile string
}

// Settings represents the config file structure
type Settings struct {
	DataDir    string `yaml:"data_dir"`
	StorageKey string `yaml:"storage_key"`
	StartView  string `yaml:"start_view"`
	TrimRows   bool   `yaml:"trim_rows"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	ConfigFile string
	DataDir    string
	StorageKey string
	StartView  string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	defaultDir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("storage_key", "calendarEvents")
	v.SetDefault("start_view", "today")
	v.SetDefault("trim_rows", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	configPath := flags.ConfigFile
	if configPath == "" {
		configPath = os.Getenv(envPrefix + "_CONFIG")
	}
	if configPath == "" {
		configPath, err = getConfigPath()
		if err != nil {
			return nil, err
		}
	}
	configPath = expandPath(configPath)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !isConfigMissing(err) {
		return nil, err
	}

	if flags.DataDir != "" {
		v.Set("data_dir", flags.DataDir)
	}
	if flags.StorageKey != "" {
		v.Set("storage_key", flags.StorageKey)
	}
	if flags.StartView != "" {
		v.Set("start_view", flags.StartView)
	}

	cfg := &Config{
		DataDir:    expandPath(v.GetString("data_dir")),
		StorageKey: strings.TrimSpace(v.GetString("storage_key")),
		StartView:  strings.TrimSpace(v.GetString("start_view")),
		TrimRows:   v.GetBool("trim_rows"),
		ConfigFile: configPath,
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = "calendarEvents"
	}

	return cfg, nil
}

// GetDefaultDir returns the default data directory
func GetDefaultDir() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "notecal"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notecal", "config.yaml"), nil
}

func isConfigMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// EnsureDataDir creates the data directory if missing
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir:    defaultDir,
		StorageKey: "calendarEvents",
		StartView:  "today",
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

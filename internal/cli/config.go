package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyFormat   = "format"
	cfgKeyAddr     = "listen_addr"
	cfgKeyRedisURL = "redis_url"
	cfgKeyCatalog  = "catalog_dir"

	defaultFormat = "markdown"
	defaultAddr   = ":8080"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Rosetta CLI configuration

# Default render format (plain or markdown)
format: markdown

# Listen address for 'rosetta serve'
listen_addr: ":8080"

# Redis render cache (optional; overridable by --redis flag)
# redis_url:

# Catalog directory (optional; overridable by --dir flag)
# catalog_dir:
`

// LoadConfig reads config.yaml from the given directory using Viper.
// It creates the directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func LoadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyAddr, defaultAddr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// DefaultConfigDir resolves the per-user config directory for the CLI.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = home
	}
	return filepath.Join(base, "rosetta")
}

// ApplyConfig fills unset options from the loaded configuration.
// Flags always win; only zero-valued fields are overwritten.
func ApplyConfig(opts *Options, v *viper.Viper) {
	if opts.Format == "" {
		opts.Format = v.GetString(cfgKeyFormat)
	}
	if opts.Addr == "" {
		opts.Addr = v.GetString(cfgKeyAddr)
	}
	if opts.RedisURL == "" {
		opts.RedisURL = v.GetString(cfgKeyRedisURL)
	}
	if opts.RepoPath == "" {
		opts.RepoPath = v.GetString(cfgKeyCatalog)
	}
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// Package config loads the tool configuration from an optional .jssort.yaml
// file. Command-line flags take precedence over file values.
package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jssort/jssort/pkg/utils"
)

// Config holds the runner configuration.
type Config struct {
	// Fix rewrites files in place instead of only reporting problems.
	Fix bool `mapstructure:"fix"`

	// Extensions selects which files are linted when a directory is given.
	Extensions []string `mapstructure:"extensions"`

	// Exclude names directories skipped during the walk.
	Exclude []string `mapstructure:"exclude"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"},
		Exclude:    []string{"node_modules"},
	}
}

// Load reads .jssort.yaml from the lint target's directory or from the
// nearest project root (the directory holding package.json). A missing
// config file is not an error. When explicit is non-empty it names a config
// file directly and must exist.
func Load(target, explicit string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("fix", def.Fix)
	v.SetDefault("extensions", def.Extensions)
	v.SetDefault("exclude", def.Exclude)

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(".jssort")
		v.SetConfigType("yaml")
		v.AddConfigPath(searchDir(target))
		if root := utils.FindProjectRoot(target); root != "" {
			v.AddConfigPath(root)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// No config file anywhere means defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && explicit == "" {
			return def, nil
		}
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	return &cfg, nil
}

// searchDir resolves the directory searched for a config file next to the
// lint target.
func searchDir(target string) string {
	if isDir, err := utils.IsDirectory(target); err == nil && isDir {
		return target
	}
	return filepath.Dir(target)
}

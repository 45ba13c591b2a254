// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultBackend     = "file"
	DefaultGroup       = "default"
	DefaultSort        = "manual"
	DefaultConcurrency = 16
	DefaultLogLevel    = "warn"
)

// DefaultExcludeProtocols are URI schemes never imported.
var DefaultExcludeProtocols = []string{"data", "javascript", "place"}

// Config represents the full configuration.
type Config struct {
	Store     StoreConfig     `mapstructure:"store"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	View      ViewConfig      `mapstructure:"view"`
	Probe     ProbeConfig     `mapstructure:"probe"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Import    ImportConfig    `mapstructure:"import"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // file, sqlite or badger
	Path    string `mapstructure:"path"`    // empty means the backend default
}

// WorkspaceConfig lists the workspace roots. Empty means the current
// working directory.
type WorkspaceConfig struct {
	Roots []string `mapstructure:"roots"`
}

// ViewConfig holds fallbacks used until a group or sort order is stored.
type ViewConfig struct {
	Group string `mapstructure:"group"`
	Sort  string `mapstructure:"sort"`
}

// ProbeConfig configures resource probing.
type ProbeConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	Hidden      bool `mapstructure:"hidden"` // list dot files in directory favorites
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// ImportConfig configures bookmark imports.
type ImportConfig struct {
	// Group receives imported bookmarks. Empty means the active group.
	Group string `mapstructure:"group"`

	IncludeFolders     []string `mapstructure:"include_folders"`
	ExcludeFolders     []string `mapstructure:"exclude_folders"`
	ExcludeURLPatterns []string `mapstructure:"exclude_url_patterns"`
	ExcludeProtocols   []string `mapstructure:"exclude_protocols"`
	MaxURLLength       int      `mapstructure:"max_url_length"`

	// Sources holds per-importer overrides keyed by importer name.
	Sources map[string]SourceConfig `mapstructure:"sources"`
}

// SourceConfig configures a single importer.
type SourceConfig struct {
	Profile    string `mapstructure:"profile"`
	CustomPath string `mapstructure:"custom_path"`
}

// Source returns the configuration for importer name.
func (c *Config) Source(name string) SourceConfig {
	return c.Import.Sources[name]
}

// Default returns the built-in defaults with environment overrides and no
// config file.
func Default() *Config {
	var cfg Config
	_ = newViper().Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration from path, or from the default locations when
// path is empty, and applies FAVORITES_ environment overrides. A missing
// file at a default location is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	return load(newViper(), path)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("FAVORITES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("store.backend", DefaultBackend)
	v.SetDefault("store.path", "")
	v.SetDefault("workspace.roots", []string{})
	v.SetDefault("view.group", DefaultGroup)
	v.SetDefault("view.sort", DefaultSort)
	v.SetDefault("probe.concurrency", DefaultConcurrency)
	v.SetDefault("probe.hidden", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "")
	v.SetDefault("import.group", "")
	v.SetDefault("import.exclude_folders", []string{"Trash"})
	v.SetDefault("import.exclude_protocols", DefaultExcludeProtocols)
	v.SetDefault("import.max_url_length", 0)

	return v
}

func load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		if local := LocalPath(); local != "" {
			v.SetConfigFile(local)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	home, _ := os.UserHomeDir()
	cfg.Store.Path = expandHome(cfg.Store.Path, home)
	cfg.Logging.Path = expandHome(cfg.Logging.Path, home)
	for i, r := range cfg.Workspace.Roots {
		cfg.Workspace.Roots[i] = expandHome(r, home)
	}

	return &cfg, nil
}

// Dir returns $XDG_CONFIG_HOME/favorites.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "favorites")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LocalPath returns a config file in the working directory, if one exists.
func LocalPath() string {
	for _, p := range []string{".favorites.yaml", ".favorites.yml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func expandHome(p, home string) string {
	if home == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

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


// Package cmd implements the favorites CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudygreybeard/favorites/pkg/config"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/logging"
	"github.com/cloudygreybeard/favorites/pkg/probe"
	"github.com/cloudygreybeard/favorites/pkg/service"
	"github.com/cloudygreybeard/favorites/pkg/store"
	"github.com/cloudygreybeard/favorites/pkg/workspace"

	// Import adapters to trigger init() registration
	_ "github.com/cloudygreybeard/favorites/pkg/export/json"
	_ "github.com/cloudygreybeard/favorites/pkg/export/markdown"
	_ "github.com/cloudygreybeard/favorites/pkg/export/opml"
	_ "github.com/cloudygreybeard/favorites/pkg/export/yaml"
	_ "github.com/cloudygreybeard/favorites/pkg/importer/chromium"
	_ "github.com/cloudygreybeard/favorites/pkg/importer/firefox"
	_ "github.com/cloudygreybeard/favorites/pkg/importer/opml"
	_ "github.com/cloudygreybeard/favorites/pkg/importer/safari"
)

var (
	cfgFile   string
	verbose   bool
	storePath string

	cfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Favorite files, folders and links, grouped and ordered",
	Long: `favorites keeps a list of favorite files, directories and URIs for a
workspace. Favorites live in groups, can be arranged in virtual folders and
are shown in stored order or sorted by name.

The list is persisted in a YAML file, SQLite or Badger (see store.backend).

Examples:
  favorites add README.md                  # Favorite a file in the workspace
  favorites add https://go.dev -t Go       # Favorite a link with a title
  favorites folder create Docs             # Create a virtual folder
  favorites add docs/guide.md -f Docs      # Add into a folder
  favorites move up README.md              # Reorder (switches to manual sort)
  favorites sort asc                       # Sort folders first, then by name
  favorites tree --watch                   # Show the tree, re-render on change
  favorites group use work                 # Switch groups
  favorites import firefox                 # Import browser bookmarks
  favorites export -o favorites.md         # Export the active group
  favorites serve                          # Run as MCP server`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.favorites.yaml or $XDG_CONFIG_HOME/favorites/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output to stderr")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "store location (overrides store.path)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("favorites %s (commit: %s, built: %s)\n", Version, Commit, Date))
}

// setup loads configuration and initializes logging.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if storePath != "" {
		loaded.Store.Path = storePath
	}
	cfg = loaded

	level := cfg.Logging.Level
	if verbose {
		level = logging.LevelDebug.String()
	}
	return logging.Init(logging.Config{
		Level:   level,
		Path:    cfg.Logging.Path,
		Console: verbose || cmd.Name() == "serve",
	})
}

// openManager opens the configured store and returns a Manager over it.
// The returned func closes the store.
func openManager() (*service.Manager, func(), error) {
	if cfg == nil {
		cfg = config.Default()
	}

	st, err := store.Open(store.Config{Backend: cfg.Store.Backend, Path: cfg.Store.Path})
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	roots, err := workspace.New(cfg.Workspace.Roots...)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("resolving workspace: %w", err)
	}

	fallback := favorite.View{Group: cfg.View.Group}
	if mode, err := favorite.ParseSortMode(cfg.View.Sort); err == nil {
		fallback.Sort = mode
	} else {
		logging.Get("cmd").Warn("ignoring view.sort", "error", err)
	}

	fs := probe.FS{Hidden: cfg.Probe.Hidden}
	m := service.New(service.Options{
		Store:       st,
		Workspace:   roots,
		Prober:      fs,
		Lister:      fs,
		Concurrency: cfg.Probe.Concurrency,
		Fallback:    fallback,
	})

	logging.Get("cmd").Debug("opened store", "backend", cfg.Store.Backend, "path", st.Path())
	return m, func() { _ = st.Close() }, nil
}

// report prints the outcome of a command. No-ops are informational and
// persistence failures are warnings; both exit 0. Other errors go back to
// cobra.
func report(cmd *cobra.Command, err error, msg string) error {
	switch {
	case err == nil:
		if msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		return nil
	case errors.Is(err, favorite.ErrNoOp):
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to do: %v\n", err)
		return nil
	case errors.Is(err, service.ErrPersistence):
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return nil
	default:
		return err
	}
}

func logVerbose(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

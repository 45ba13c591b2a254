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


package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

// Importer preference order when no source is named.
var importPreference = []string{"chrome", "firefox", "edge", "safari", "chromium", "brave"}

var importCmd = &cobra.Command{
	Use:   "import [source]",
	Short: "Import bookmarks as favorites",
	Long: `Imports bookmarks from a browser profile or a bookmark file into a group.
Bookmark folders become favorite folders; bookmarks already present in the
same folder are skipped, so importing again only adds what is new.

Sources:
  chrome, edge, chromium, brave   Chromium profiles (all platforms)
  firefox                         Firefox profiles (all platforms)
  safari                          Safari (macOS, or --file)
  opml                            OPML or Netscape HTML file (--file)

Examples:
  favorites import                         # First available browser
  favorites import firefox -p work         # Specific profile
  favorites import opml --file export.html # Bookmark file
  favorites import --all --group web       # All browsers into group "web"
  favorites import --list                  # Show browsers and profiles`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringP("profile", "p", "", "profile name (default: the source's default profile)")
	importCmd.Flags().String("file", "", "read from this file instead of the browser's")
	importCmd.Flags().StringP("group", "g", "", "target group (default: import.group, else the active group)")
	importCmd.Flags().Bool("all", false, "import from every available browser")
	importCmd.Flags().Bool("list", false, "list sources and profiles and exit")
	importCmd.Flags().Bool("dry-run", false, "read and filter, but do not import")

	importCmd.Flags().StringSlice("exclude-protocols", nil, "protocols to exclude (e.g., data,javascript)")
	importCmd.Flags().StringSlice("warn-protocols", nil, "protocols that trigger warnings (e.g., file,chrome)")
	importCmd.Flags().Int("max-url-length", 0, "exclude URLs longer than this (0 = use config default)")
	importCmd.Flags().Int("warn-url-length", 0, "warn on URLs longer than this")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return runListProfiles(cmd)
	}

	ctx := cmd.Context()
	all, _ := cmd.Flags().GetBool("all")

	var sources []importer.Adapter
	switch {
	case all:
		sources = availableByPreference()
	case len(args) == 1:
		a, ok := adapter.Importer(args[0])
		if !ok {
			return fmt.Errorf("unknown source: %s", args[0])
		}
		sources = []importer.Adapter{a}
	default:
		if avail := availableByPreference(); len(avail) > 0 {
			sources = avail[:1]
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("no available bookmark source found")
	}

	var records []importer.Record
	for _, src := range sources {
		got, err := readSource(ctx, cmd, src, !all)
		if err != nil {
			if !all {
				return err
			}
			logVerbose(cmd, "Source %s: %v", src.Name(), err)
			continue
		}
		logVerbose(cmd, "Source %s: %d bookmarks from %s", src.Name(), len(got), src.Path())
		records = append(records, got...)
	}

	result := importer.Filter(records, filterOptions(cmd))
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	if result.Excluded > 0 {
		logVerbose(cmd, "Excluded %d bookmarks by filter rules", result.Excluded)
	}
	kept := importer.Deduplicate(result.Records)

	if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
		fmt.Fprintf(cmd.OutOrStdout(), "Would import %d bookmarks (%d excluded)\n", len(kept), result.Excluded)
		return nil
	}

	group, _ := cmd.Flags().GetString("group")
	if group == "" {
		group = cfg.Import.Group
	}

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	stats, err := m.Import(ctx, kept, group)
	return report(cmd, err, fmt.Sprintf("Imported %d favorites, %d folders created, %d skipped",
		stats.Added, stats.Folders, stats.Skipped))
}

// readSource configures src from config and flags and reads it. Profile
// and file flags only apply when a single source is read.
func readSource(ctx context.Context, cmd *cobra.Command, src importer.Adapter, useFlags bool) ([]importer.Record, error) {
	sc := cfg.Source(src.Name())
	icfg := importer.Config{Profile: sc.Profile, CustomPath: sc.CustomPath}
	if useFlags {
		if p, _ := cmd.Flags().GetString("profile"); p != "" {
			icfg.Profile = p
		}
		if f, _ := cmd.Flags().GetString("file"); f != "" {
			icfg.CustomPath = f
		}
	}

	if err := src.Configure(icfg); err != nil {
		return nil, fmt.Errorf("configuring %s: %w", src.Name(), err)
	}
	records, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading from %s: %w", src.Name(), err)
	}
	return records, nil
}

func filterOptions(cmd *cobra.Command) importer.FilterOptions {
	opts := importer.FilterOptions{
		IncludeFolders:     cfg.Import.IncludeFolders,
		ExcludeFolders:     cfg.Import.ExcludeFolders,
		ExcludeURLPatterns: cfg.Import.ExcludeURLPatterns,
		ExcludeProtocols:   cfg.Import.ExcludeProtocols,
		MaxURLLength:       cfg.Import.MaxURLLength,
	}

	if v, _ := cmd.Flags().GetStringSlice("exclude-protocols"); len(v) > 0 {
		opts.ExcludeProtocols = v
	}
	if v, _ := cmd.Flags().GetStringSlice("warn-protocols"); len(v) > 0 {
		opts.WarnProtocols = v
	}
	if v, _ := cmd.Flags().GetInt("max-url-length"); v > 0 {
		opts.MaxURLLength = v
	}
	if v, _ := cmd.Flags().GetInt("warn-url-length"); v > 0 {
		opts.WarnURLLength = v
	}
	return opts
}

func availableByPreference() []importer.Adapter {
	var out []importer.Adapter
	for _, name := range importPreference {
		a, ok := adapter.Importer(name)
		if !ok {
			continue
		}
		sc := cfg.Source(name)
		if err := a.Configure(importer.Config{Profile: sc.Profile, CustomPath: sc.CustomPath}); err != nil {
			continue
		}
		if a.Available() {
			out = append(out, a)
		}
	}
	return out
}

func runListProfiles(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Bookmark sources:")
	fmt.Fprintln(w)

	for _, a := range adapter.Importers() {
		status := "not available"
		if a.Available() {
			status = "available"
		}

		fmt.Fprintf(w, "  %s (%s)\n", a.DisplayName(), status)
		if path := a.Path(); path != "" {
			fmt.Fprintf(w, "    Path: %s\n", path)
		}

		profiles, err := a.ListProfiles()
		if err == nil && len(profiles) > 0 {
			fmt.Fprintln(w, "    Profiles:")
			for _, p := range profiles {
				def := ""
				if p.IsDefault {
					def = " (default)"
				}
				fmt.Fprintf(w, "      - %s%s\n", p.Name, def)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

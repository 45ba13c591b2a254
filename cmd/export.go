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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active group",
	Long: `Renders the active group as JSON, YAML, Markdown, OPML or Netscape HTML.

By default output goes to stdout. With -o the format is taken from the file
extension unless --format is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().String("format", "", "output format (default: from --output, else markdown)")
	exportCmd.Flags().String("style", "", "format variant: textual or table (markdown only)")
	exportCmd.Flags().String("title", "", "document title")
	exportCmd.Flags().IntP("depth", "d", 1, "levels of directory favorites to include")
	exportCmd.Flags().Bool("metadata", true, "include metadata header")
	exportCmd.Flags().Bool("ids", false, "include entry IDs")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	depth, _ := cmd.Flags().GetInt("depth")

	exporter, err := pickExporter(format, outPath)
	if err != nil {
		return err
	}

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	nodes, view, err := m.Tree(cmd.Context(), depth)
	if err != nil {
		return err
	}

	doc := export.NewDocument(nodes, view)
	doc.Title, _ = cmd.Flags().GetString("title")

	opts := export.DefaultOptions()
	opts.IncludeMetadata, _ = cmd.Flags().GetBool("metadata")
	opts.IncludeIDs, _ = cmd.Flags().GetBool("ids")
	opts.Style, _ = cmd.Flags().GetString("style")

	data, err := exporter.Render(doc, opts)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	if outPath == "" || outPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logVerbose(cmd, "Written %d favorites to %s", doc.Count(), outPath)
	return nil
}

func pickExporter(format, outPath string) (export.Adapter, error) {
	if format != "" {
		a, ok := adapter.Exporter(format)
		if !ok {
			return nil, fmt.Errorf("unknown output format: %s (available: %v)", format, adapter.ExporterNames())
		}
		return a, nil
	}
	if outPath != "" && outPath != "-" {
		if a, ok := adapter.ExporterFor(outPath); ok {
			return a, nil
		}
	}
	a, ok := adapter.Exporter("markdown")
	if !ok {
		return nil, fmt.Errorf("markdown exporter is not registered")
	}
	return a, nil
}

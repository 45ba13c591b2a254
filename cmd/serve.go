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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloudygreybeard/favorites/pkg/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an MCP server",
	Long: `Runs favorites as an MCP (Model Context Protocol) server over stdin/stdout.

Resources:
  - favorites://tree    The active group as a JSON tree

Tools:
  - list_favorites      Show the active group
  - add_favorite        Add a file, directory or URI
  - create_folder       Create a folder
  - rename_folder       Rename a folder
  - delete_favorite     Remove a favorite
  - delete_folder       Delete a folder and its contents
  - move_favorite       Reorder a favorite (up, down, top, bottom)
  - set_sort            Set the sort order (manual, asc, desc)
  - use_group           Switch the active group

Add to your MCP client configuration:

  {
    "mcpServers": {
      "favorites": {
        "command": "/path/to/favorites",
        "args": ["serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcp.NewServer(m, Version).Run(ctx, os.Stdin, os.Stdout)
}

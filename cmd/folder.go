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

	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage virtual folders",
	Long: `Folders group favorites without touching the filesystem. Folder names
are unique within a group; a folder can be addressed by ID or by name.`,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, _ := cmd.Flags().GetString("parent")

		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		f, err := m.AddFolder(cmd.Context(), args[0], parent)
		return report(cmd, err, fmt.Sprintf("Created folder %s (%s)", f.Name, f.ID))
	},
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <folder> <new-name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		err = m.RenameFolder(cmd.Context(), args[0], args[1])
		return report(cmd, err, fmt.Sprintf("Renamed %s to %s", args[0], args[1]))
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <folder>",
	Short: "Delete a folder and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		err = m.DeleteFolder(cmd.Context(), args[0])
		return report(cmd, err, fmt.Sprintf("Deleted folder %s", args[0]))
	},
}

func init() {
	folderCreateCmd.Flags().StringP("parent", "p", "", "parent folder ID or name")

	folderCmd.AddCommand(folderCreateCmd, folderRenameCmd, folderDeleteCmd)
	rootCmd.AddCommand(folderCmd)
}

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

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage favorite groups",
	Long: `Groups are independent favorite lists. Every command works on the active
group; "default" always exists.`,
}

var groupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List groups",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		groups, err := m.ListGroups(cmd.Context())
		if err != nil {
			return err
		}
		for _, g := range groups {
			marker := " "
			if g.Active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %d\n", marker, g.Name, g.Entries)
		}
		return nil
	},
}

var groupUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active group, creating it when new",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		err = m.UseGroup(cmd.Context(), args[0])
		return report(cmd, err, fmt.Sprintf("Active group: %s", args[0]))
	},
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group without switching to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		err = m.CreateGroup(cmd.Context(), args[0])
		return report(cmd, err, fmt.Sprintf("Created group %s", args[0]))
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a group and all of its favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, done, err := openManager()
		if err != nil {
			return err
		}
		defer done()

		err = m.DeleteGroup(cmd.Context(), args[0])
		return report(cmd, err, fmt.Sprintf("Deleted group %s", args[0]))
	},
}

func init() {
	groupCmd.AddCommand(groupListCmd, groupUseCmd, groupCreateCmd, groupDeleteCmd)
	rootCmd.AddCommand(groupCmd)
}

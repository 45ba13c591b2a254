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

	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

var addCmd = &cobra.Command{
	Use:   "add <path|uri>...",
	Short: "Add favorites to the active group",
	Long: `Adds files, directories or URIs to the active group.

Paths inside the workspace are stored relative to it; file:// URIs are
stored as paths. Adding something already favorited in the same folder is
a no-op.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var rmCmd = &cobra.Command{
	Use:     "rm <id|path|uri>",
	Aliases: []string{"remove"},
	Short:   "Remove a favorite from the active group",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Reorder a favorite among its siblings",
	Long: `Moves a favorite up, down, to the top or to the bottom of the favorites
that share its folder. Folders keep their place. A successful move switches
the sort order to manual so the new order shows.`,
}

var sortCmd = &cobra.Command{
	Use:       "sort [manual|asc|desc]",
	Short:     "Show or set the sort order",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"manual", "asc", "desc"},
	RunE:      runSort,
}

func init() {
	addCmd.Flags().StringP("folder", "f", "", "folder ID or name to add into")
	addCmd.Flags().StringP("title", "t", "", "display title (single favorite only)")
	rmCmd.Flags().StringP("folder", "f", "", "folder the favorite is in")

	for _, dir := range []favorite.Direction{favorite.MoveUp, favorite.MoveDown, favorite.MoveToTop, favorite.MoveToBottom} {
		sub := &cobra.Command{
			Use:   string(dir) + " <id|path|uri>",
			Short: fmt.Sprintf("Move a favorite %s", dir),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMove(cmd, args[0], dir)
			},
		}
		sub.Flags().StringP("folder", "f", "", "folder the favorite is in")
		moveCmd.AddCommand(sub)
	}

	rootCmd.AddCommand(addCmd, rmCmd, moveCmd, sortCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	folder, _ := cmd.Flags().GetString("folder")
	title, _ := cmd.Flags().GetString("title")
	if title != "" && len(args) > 1 {
		return fmt.Errorf("--title needs a single favorite")
	}

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	for _, location := range args {
		e, err := m.AddResource(cmd.Context(), location, folder, title)
		if err := report(cmd, err, fmt.Sprintf("Added %s", e.FilePath)); err != nil {
			return err
		}
	}
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	folder, _ := cmd.Flags().GetString("folder")

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	err = m.DeleteResource(cmd.Context(), args[0], folder)
	return report(cmd, err, fmt.Sprintf("Removed %s", args[0]))
}

func runMove(cmd *cobra.Command, ref string, dir favorite.Direction) error {
	folder, _ := cmd.Flags().GetString("folder")

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	err = m.Move(cmd.Context(), ref, folder, dir)
	return report(cmd, err, "")
}

func runSort(cmd *cobra.Command, args []string) error {
	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	if len(args) == 0 {
		view, err := m.View(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), view.Sort)
		return nil
	}

	mode, err := favorite.ParseSortMode(args[0])
	if err != nil {
		return err
	}
	err = m.SetSort(cmd.Context(), mode)
	return report(cmd, err, fmt.Sprintf("Sort order: %s", mode))
}

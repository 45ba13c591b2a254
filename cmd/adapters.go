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

	"github.com/cloudygreybeard/favorites/pkg/adapter"
)

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List registered importers and exporters",
	Long:  `Lists all registered importers (bookmark sources) and exporters (renderers).`,
	Args:  cobra.NoArgs,
	RunE:  runAdapters,
}

func init() {
	rootCmd.AddCommand(adaptersCmd)
}

func runAdapters(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Importers (bookmark sources):")
	fmt.Fprintln(w)
	for _, a := range adapter.Importers() {
		status := "not available"
		if a.Available() {
			status = "available"
		}
		fmt.Fprintf(w, "  %-12s %-20s [%s]\n", a.Name(), a.DisplayName(), status)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exporters (renderers):")
	fmt.Fprintln(w)
	for _, a := range adapter.Exporters() {
		fmt.Fprintf(w, "  %-12s %-20s %v\n", a.Name(), a.DisplayName(), a.Extensions())
	}

	return nil
}

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
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/cloudygreybeard/favorites/pkg/export"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/service"
	"github.com/cloudygreybeard/favorites/pkg/store"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	folderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dirStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	uriStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	transientStyle = lipgloss.NewStyle().Faint(true)
	enumStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the favorites of the active group",
	Long: `Shows the active group as a tree. Folders are always expanded; directory
favorites are listed --depth levels deep. Favorites whose file no longer
exists are left out.

With --watch the tree is drawn again whenever the store changes.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().IntP("depth", "d", 1, "levels of directory favorites to list")
	treeCmd.Flags().BoolP("watch", "w", false, "re-render when the store changes")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	watch, _ := cmd.Flags().GetBool("watch")

	m, done, err := openManager()
	if err != nil {
		return err
	}
	defer done()

	if !watch {
		out, err := renderGroup(cmd.Context(), m, depth)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTree(ctx, m, depth, cmd.OutOrStdout())
}

// watchTree renders once and again on every store change until ctx is done.
func watchTree(ctx context.Context, m *service.Manager, depth int, w io.Writer) error {
	changes, err := store.Watch(ctx, m.Store().Path(), store.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("watching store: %w", err)
	}

	var gate renderGate
	var wg sync.WaitGroup
	defer wg.Wait()

	render := func() {
		seq := gate.Begin()
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := renderGroup(ctx, m, depth)
			if err != nil {
				out = fmt.Sprintf("error: %v\n", err)
			}
			gate.Publish(seq, func() {
				fmt.Fprint(w, "\033[H\033[2J"+out)
			})
		}()
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			render()
		}
	}
}

// renderGate numbers renders and prints them in order. A render that
// finishes after a newer one was printed is discarded.
type renderGate struct {
	mu        sync.Mutex
	next      uint64
	published uint64
}

// Begin returns the number of a new render.
func (g *renderGate) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.next
}

// Publish runs print if no newer render was published, and reports whether
// it ran.
func (g *renderGate) Publish(seq uint64, print func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq < g.published {
		return false
	}
	g.published = seq
	print()
	return true
}

func renderGroup(ctx context.Context, m *service.Manager, depth int) (string, error) {
	nodes, view, err := m.Tree(ctx, depth)
	if err != nil {
		return "", err
	}
	return renderTree(nodes, view), nil
}

// renderTree draws nodes under a header naming the group and sort order.
func renderTree(nodes []*favorite.Node, view favorite.View) string {
	header := headerStyle.Render(fmt.Sprintf("%s (%s)", view.GroupOrDefault(), view.Sort))
	if len(nodes) == 0 {
		return header + "\n  no favorites\n"
	}

	t := tree.Root(header).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	addChildren(t, nodes)
	return t.String() + "\n"
}

func addChildren(t *tree.Tree, nodes []*favorite.Node) {
	for _, n := range nodes {
		label := nodeLabel(n.Item)
		if len(n.Children) == 0 {
			t.Child(label)
			continue
		}
		sub := tree.Root(label)
		addChildren(sub, n.Children)
		t.Child(sub)
	}
}

func nodeLabel(item favorite.Item) string {
	var style lipgloss.Style
	label := item.Label

	switch export.Kind(item) {
	case "folder":
		style = folderStyle
	case "directory":
		style = dirStyle
		label += "/"
	case "uri":
		style = uriStyle
		if item.Title != "" {
			label += " " + transientStyle.Render(item.Location)
		}
	default:
		style = lipgloss.NewStyle()
	}
	if item.Transient {
		style = transientStyle
	}
	return style.Render(label)
}

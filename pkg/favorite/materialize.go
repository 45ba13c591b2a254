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

package favorite

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultProbeConcurrency bounds the number of probes run at once.
const DefaultProbeConcurrency = 16

// Prober classifies a resource location (absolute path or URI).
// Any error is treated as StatMissing.
type Prober interface {
	Probe(ctx context.Context, location string) (Stat, error)
}

// Lister returns the entry names of a directory location.
// Any error is treated as an empty directory.
type Lister interface {
	List(ctx context.Context, location string) ([]string, error)
}

// Materializer builds the displayed tree from the persisted list.
type Materializer struct {
	prober      Prober
	lister      Lister
	ws          Workspace
	concurrency int
}

// NewMaterializer creates a materializer over the given collaborators.
func NewMaterializer(prober Prober, lister Lister, ws Workspace) *Materializer {
	return &Materializer{
		prober:      prober,
		lister:      lister,
		ws:          ws,
		concurrency: DefaultProbeConcurrency,
	}
}

// SetConcurrency sets the probe limit. Values below one mean unlimited.
func (m *Materializer) SetConcurrency(n int) {
	m.concurrency = n
}

// Hierarchy is the materialized tree of one group for a single render.
type Hierarchy struct {
	m        *Materializer
	view     View
	roots    []Item
	children map[string][]Item

	// ProbeFailures counts probes that returned an error.
	ProbeFailures int
	// Dropped counts resources left out because they are missing.
	Dropped int
	// Promoted counts folders shown at the root to break parent cycles.
	Promoted int
}

// Materialize probes the resources of the view's group and indexes the
// result. Missing resources are dropped. An entry is a root when it has no
// parent, when its parent is not a folder of the group, or when it is the
// first member, in list order, of a folder parent cycle.
func (m *Materializer) Materialize(ctx context.Context, list []Entry, view View) *Hierarchy {
	group := view.GroupOrDefault()

	var entries []Entry
	for _, e := range list {
		if inGroup(e, group) {
			entries = append(entries, e)
		}
	}

	items, failures := m.probeAll(ctx, entries, "resource")

	h := &Hierarchy{
		m:             m,
		view:          view,
		children:      make(map[string][]Item),
		ProbeFailures: failures,
	}

	kept := items[:0]
	for _, it := range items {
		if !it.IsFolder() && it.Stat == StatMissing {
			h.Dropped++
			continue
		}
		kept = append(kept, it)
	}

	folders := make(map[string]int)
	for i, it := range kept {
		if it.IsFolder() && it.ID != "" {
			if _, dup := folders[it.ID]; !dup {
				folders[it.ID] = i
			}
		}
	}

	isRoot := make([]bool, len(kept))
	for i, it := range kept {
		if _, ok := folders[it.ParentID]; it.ParentID == "" || !ok {
			isRoot[i] = true
		}
	}

	promoted := breakCycles(kept, folders, isRoot)

	for i, it := range kept {
		if isRoot[i] {
			h.roots = append(h.roots, it)
			continue
		}
		h.children[it.ParentID] = append(h.children[it.ParentID], it)
	}
	h.Promoted = len(promoted)

	return h
}

// breakCycles marks as roots the folders needed to make every entry
// reachable from a root. Unreachable folders can only sit on or below a
// parent cycle; for each cycle the member with the lowest list index is
// promoted. It returns the promoted indexes.
func breakCycles(items []Item, folders map[string]int, isRoot []bool) map[int]bool {
	childIdx := make(map[string][]int)
	for i, it := range items {
		if !isRoot[i] {
			childIdx[it.ParentID] = append(childIdx[it.ParentID], i)
		}
	}

	reached := make([]bool, len(items))
	mark := func(start int) {
		stack := []int{start}
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reached[i] {
				continue
			}
			reached[i] = true
			if items[i].IsFolder() {
				stack = append(stack, childIdx[items[i].ID]...)
			}
		}
	}

	for i := range items {
		if isRoot[i] {
			mark(i)
		}
	}

	promoted := make(map[int]bool)
	for i, it := range items {
		if reached[i] || !it.IsFolder() {
			continue
		}

		// Walk up until a folder repeats; the repeat and everything after
		// it on the walk form the cycle.
		order := make(map[int]int)
		var walk []int
		cur := i
		for {
			if _, seen := order[cur]; seen {
				break
			}
			order[cur] = len(walk)
			walk = append(walk, cur)
			cur = folders[items[cur].ParentID]
		}

		pick := cur
		for _, j := range walk[order[cur]:] {
			if j < pick {
				pick = j
			}
		}

		promoted[pick] = true
		isRoot[pick] = true
		mark(pick)
	}
	return promoted
}

// View returns the view the hierarchy was built for.
func (h *Hierarchy) View() View {
	return h.view
}

// Roots returns the sorted root level.
func (h *Hierarchy) Roots() []Item {
	return SortItems(h.roots, h.view.Sort)
}

// Children returns the sorted children of item. Folder children come from
// the persisted list. Directory resources are listed on demand and always
// sorted by name when the view sorts manually, since they have no persisted
// order.
func (h *Hierarchy) Children(ctx context.Context, item Item) []Item {
	if item.IsFolder() {
		if item.ID == "" {
			return nil
		}
		return SortItems(h.children[item.ID], h.view.Sort)
	}

	if item.Stat != StatDirectory || h.m.lister == nil {
		return nil
	}

	names, err := h.m.lister.List(ctx, Resolve(h.m.ws, item.FilePath))
	if err != nil || len(names) == 0 {
		return nil
	}

	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{
			Kind:     KindResource,
			Group:    item.Group,
			FilePath: JoinLocation(item.FilePath, name),
		}
	}

	probed, _ := h.m.probeAll(ctx, entries, "resourceChild")

	kids := make([]Item, 0, len(probed))
	for _, it := range probed {
		if it.Stat == StatMissing {
			continue
		}
		it.Transient = true
		kids = append(kids, it)
	}

	mode := h.view.Sort
	if mode == SortManual || mode == "" {
		mode = SortAsc
	}
	return SortItems(kids, mode)
}

// Expand returns the fully expanded tree. Folders are expanded completely;
// directory resources are listed up to dirDepth levels deep.
func (h *Hierarchy) Expand(ctx context.Context, dirDepth int) []*Node {
	visited := make(map[string]bool)
	return h.expand(ctx, h.Roots(), dirDepth, visited)
}

func (h *Hierarchy) expand(ctx context.Context, items []Item, dirDepth int, visited map[string]bool) []*Node {
	nodes := make([]*Node, 0, len(items))
	for _, it := range items {
		n := &Node{Item: it}
		switch {
		case it.IsFolder():
			if it.ID != "" && !visited[it.ID] {
				visited[it.ID] = true
				n.Children = h.expand(ctx, h.Children(ctx, it), dirDepth, visited)
			}
		case it.Stat == StatDirectory && dirDepth > 0:
			n.Children = h.expand(ctx, h.Children(ctx, it), dirDepth-1, visited)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// probeAll classifies entries concurrently. Folders are not probed. The
// result keeps the input order; the second value counts failed probes.
func (m *Materializer) probeAll(ctx context.Context, entries []Entry, contextValue string) ([]Item, int) {
	items := make([]Item, len(entries))
	var failures atomic.Int64

	var g errgroup.Group
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}

	for i, e := range entries {
		if e.IsFolder() {
			items[i] = folderItem(e)
			continue
		}

		g.Go(func() error {
			location := Resolve(m.ws, e.FilePath)
			stat := StatMissing
			if m.prober != nil {
				s, err := m.prober.Probe(ctx, location)
				if err != nil {
					failures.Add(1)
				} else {
					stat = s
				}
			}
			items[i] = resourceItem(e, stat, location, contextValue)
			return nil
		})
	}
	_ = g.Wait()

	return items, int(failures.Load())
}

func folderItem(e Entry) Item {
	return Item{
		Entry:      e,
		Stat:       StatDirectory,
		Label:      e.Name,
		Expandable: true,
		Context:    "favorite.folder",
	}
}

func resourceItem(e Entry, stat Stat, location, contextValue string) Item {
	if e.Kind == "" {
		e.Kind = KindResource
	}

	label := e.Title
	if label == "" {
		label = BaseName(e.FilePath)
	}

	if IsURI(e.FilePath) {
		contextValue = "uri." + contextValue
	}
	if stat == StatDirectory {
		contextValue += ".dir"
	}

	return Item{
		Entry:      e,
		Stat:       stat,
		Location:   location,
		Label:      label,
		Expandable: stat == StatDirectory,
		Context:    contextValue,
	}
}

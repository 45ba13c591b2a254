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

// Package favorite provides the favorites data model and the engine that
// edits and materializes it.
//
// Favorites are persisted as a single flat, ordered list of entries. An
// entry is either a resource (a file path or a URI) or a folder. Nesting is
// expressed through optional parent identifiers rather than nested data, and
// every entry belongs to exactly one group.
//
// # Editing
//
// Mutators are pure functions over the whole list. They never modify their
// input; each returns a new list that the caller persists:
//
//	list, err := favorite.AddFolder(list, view, "Work", "", favorite.NewID)
//	if errors.Is(err, favorite.ErrDuplicateName) {
//	    // another folder in the group already uses the name
//	}
//
// # Materializing
//
// A Materializer turns the flat list into the tree shown to the user. It
// probes every resource of the active group, drops the ones that no longer
// exist and sorts each level according to the active sort mode:
//
//	m := favorite.NewMaterializer(prober, lister, ws)
//	h := m.Materialize(ctx, list, view)
//	for _, item := range h.Roots() {
//	    children := h.Children(ctx, item)
//	    ...
//	}
package favorite

// DefaultGroup is the group used when no group has been selected.
const DefaultGroup = "default"

// Kind distinguishes the two kinds of persisted entries.
type Kind string

const (
	KindResource Kind = "resource"
	KindFolder   Kind = "folder"
)

// Entry is a single persisted favorite.
//
// Resources carry FilePath; folders carry Name. ParentID, when set, refers
// to the ID of a folder in the same group. Entries are values: mutators
// copy them into new lists and never edit a stored entry in place.
type Entry struct {
	// ID is unique across the whole list, not just within a group.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Kind is KindResource or KindFolder. An empty kind is read as a resource.
	Kind Kind `json:"type,omitempty" yaml:"type,omitempty"`

	// Group names the collection the entry belongs to.
	Group string `json:"group" yaml:"group"`

	// ParentID is the ID of the enclosing folder. Empty means the group root.
	ParentID string `json:"parentId,omitempty" yaml:"parentId,omitempty"`

	// FilePath is a path (workspace-relative or absolute) or a URI string.
	FilePath string `json:"filePath,omitempty" yaml:"filePath,omitempty"`

	// Name is the folder display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Title optionally overrides the display label of a resource.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// IsFolder reports whether the entry is a folder.
func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}

// Stat is the probed classification of a resource.
type Stat int

const (
	StatMissing Stat = iota
	StatFile
	StatDirectory
)

// String returns the string representation of the stat.
func (s Stat) String() string {
	switch s {
	case StatFile:
		return "file"
	case StatDirectory:
		return "directory"
	default:
		return "missing"
	}
}

// View is the active group and sort mode that every mutator and the
// materializer operate under.
type View struct {
	Group string
	Sort  SortMode
}

// GroupOrDefault returns the view's group, falling back to DefaultGroup.
func (v View) GroupOrDefault() string {
	if v.Group == "" {
		return DefaultGroup
	}
	return v.Group
}

// Item is a materialized favorite: an entry plus what probing found out
// about it. Items are built for a single render and then discarded.
type Item struct {
	Entry

	// Stat is StatDirectory for folders without any filesystem access.
	Stat Stat

	// Location is the absolute path or URI string of a resource.
	Location string

	// Label is the display label used for sorting.
	Label string

	// Expandable is true for folders and directory resources.
	Expandable bool

	// Transient marks directory children that have no persisted entry.
	Transient bool

	// Context describes the item for menus and renderers, for example
	// "favorite.folder", "resource.dir" or "uri.resourceChild".
	Context string
}

// IsDir reports whether the item sorts with folders and directories.
func (i Item) IsDir() bool {
	return i.IsFolder() || i.Stat == StatDirectory
}

// Node is an item with its expanded children, used for exports.
type Node struct {
	Item     Item
	Children []*Node
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// inGroup reports whether e belongs to group.
func inGroup(e Entry, group string) bool {
	return e.Group == group
}

// clone returns a shallow copy of list with its own backing array.
func clone(list []Entry) []Entry {
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

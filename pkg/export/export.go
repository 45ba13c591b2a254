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


// Package export defines the Adapter interface for favorites renderers.
//
// Exporters turn the materialized tree of a group into a file format.
// Each exporter registers itself with the adapter registry from init and
// is selected with the --format flag or by output file extension:
//
//	favorites export --format markdown
//	favorites export -o favorites.opml
package export

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

// Adapter is the interface for favorites renderers.
type Adapter interface {
	// Name returns the identifier used with --format.
	Name() string

	// DisplayName returns a human-friendly name.
	DisplayName() string

	// Extensions returns the file extensions of the format. The first is
	// the default.
	Extensions() []string

	// Render converts doc to the output format.
	Render(doc *Document, opts Options) ([]byte, error)
}

// Document is the tree of one group, ready for rendering.
type Document struct {
	Title     string
	Group     string
	Sort      favorite.SortMode
	Generated time.Time
	Nodes     []*favorite.Node
}

// NewDocument wraps an expanded tree of view's group.
func NewDocument(nodes []*favorite.Node, view favorite.View) *Document {
	return &Document{
		Group:     view.GroupOrDefault(),
		Sort:      view.Sort,
		Generated: time.Now(),
		Nodes:     nodes,
	}
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	total := 0
	for _, n := range d.Nodes {
		total += n.Count()
	}
	return total
}

// TitleOrDefault returns the document title, derived from the group when
// unset.
func (d *Document) TitleOrDefault() string {
	if d.Title != "" {
		return d.Title
	}
	return "Favorites: " + d.Group
}

// Options configures what a render includes.
type Options struct {
	// IncludeMetadata adds generation time, group, sort order and counts.
	IncludeMetadata bool

	// IncludeIDs adds entry IDs where the format has room for them.
	IncludeIDs bool

	// Style selects a format variant. Markdown supports "textual" and
	// "table".
	Style string
}

// DefaultOptions returns options with metadata included.
func DefaultOptions() Options {
	return Options{IncludeMetadata: true}
}

// Kind classifies an item for renderers: "folder", "uri", "directory" or
// "file".
func Kind(item favorite.Item) string {
	switch {
	case item.IsFolder():
		return "folder"
	case favorite.IsURI(item.Location):
		return "uri"
	case item.Stat == favorite.StatDirectory:
		return "directory"
	default:
		return "file"
	}
}

// Href returns a link target for item: URIs as they are, local paths as
// file URLs. Folders have no link target.
func Href(item favorite.Item) string {
	switch {
	case item.IsFolder() || item.Location == "":
		return ""
	case favorite.IsURI(item.Location):
		return item.Location
	default:
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(item.Location)}
		return u.String()
	}
}

// Entry is a format-neutral node used by the structured renderers.
type Entry struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	Label     string  `json:"label" yaml:"label"`
	Kind      string  `json:"kind" yaml:"kind"`
	Location  string  `json:"location,omitempty" yaml:"location,omitempty"`
	Context   string  `json:"context,omitempty" yaml:"context,omitempty"`
	Transient bool    `json:"transient,omitempty" yaml:"transient,omitempty"`
	Children  []Entry `json:"children,omitempty" yaml:"children,omitempty"`
}

// Entries converts nodes to Entry values.
func Entries(nodes []*favorite.Node, opts Options) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		e := Entry{
			Label:     n.Item.Label,
			Kind:      Kind(n.Item),
			Location:  n.Item.Location,
			Context:   n.Item.Context,
			Transient: n.Item.Transient,
		}
		if opts.IncludeIDs {
			e.ID = n.Item.ID
		}
		if len(n.Children) > 0 {
			e.Children = Entries(n.Children, opts)
		}
		out = append(out, e)
	}
	return out
}

// Metadata describes a render for formats that carry a header.
type Metadata struct {
	Generated string `json:"generated" yaml:"generated"`
	Group     string `json:"group" yaml:"group"`
	Sort      string `json:"sort" yaml:"sort"`
	Total     int    `json:"total" yaml:"total"`
}

// MetadataOf returns doc's metadata.
func MetadataOf(doc *Document) *Metadata {
	generated := doc.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	return &Metadata{
		Generated: generated.Format(time.RFC3339),
		Group:     doc.Group,
		Sort:      doc.Sort.String(),
		Total:     doc.Count(),
	}
}

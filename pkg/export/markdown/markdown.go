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


// Package markdown provides an exporter for Markdown.
package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/export"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

// Style defines the markdown sub-format.
type Style string

const (
	StyleTextual Style = "textual" // nested lists
	StyleTable   Style = "table"   // one table row per favorite
)

func init() {
	adapter.RegisterExporter(New())
}

// Adapter implements export.Adapter for Markdown.
type Adapter struct{}

// New creates a Markdown exporter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "markdown"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Markdown"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Render converts the document to Markdown.
func (a *Adapter) Render(doc *export.Document, opts export.Options) ([]byte, error) {
	var sb strings.Builder

	title := doc.Title
	if title == "" {
		title = cases.Title(language.English).String(doc.Group) + " Favorites"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if opts.IncludeMetadata {
		meta := export.MetadataOf(doc)
		fmt.Fprintf(&sb, "*Generated: %s*\n", meta.Generated)
		fmt.Fprintf(&sb, "*Group: %s, sort: %s*\n", meta.Group, meta.Sort)
		fmt.Fprintf(&sb, "*Total: %d*\n\n", meta.Total)
	}

	switch Style(opts.Style) {
	case StyleTable:
		renderTable(&sb, doc.Nodes)
	case StyleTextual, "":
		for _, n := range doc.Nodes {
			renderNode(&sb, n, 0)
		}
	default:
		return nil, fmt.Errorf("unknown markdown style %q (want textual or table)", opts.Style)
	}

	return []byte(sb.String()), nil
}

func renderNode(sb *strings.Builder, n *favorite.Node, indent int) {
	prefix := strings.Repeat("  ", indent) + "- "

	switch export.Kind(n.Item) {
	case "folder":
		fmt.Fprintf(sb, "%s**%s**\n", prefix, escapeText(n.Item.Label))
	case "directory":
		fmt.Fprintf(sb, "%s[%s/](%s)\n", prefix, escapeText(n.Item.Label), export.Href(n.Item))
	default:
		fmt.Fprintf(sb, "%s[%s](%s)\n", prefix, escapeText(n.Item.Label), export.Href(n.Item))
	}

	for _, c := range n.Children {
		renderNode(sb, c, indent+1)
	}
}

func renderTable(sb *strings.Builder, nodes []*favorite.Node) {
	sb.WriteString("| Name | Folder | Kind |\n")
	sb.WriteString("|---|---|---|\n")

	var walk func(nodes []*favorite.Node, path []string)
	walk = func(nodes []*favorite.Node, path []string) {
		for _, n := range nodes {
			kind := export.Kind(n.Item)
			if kind != "folder" {
				link := fmt.Sprintf("[%s](%s)", escapeText(n.Item.Label), export.Href(n.Item))
				fmt.Fprintf(sb, "| %s | %s | %s |\n", escapeCell(link), escapeCell(strings.Join(path, "/")), kind)
			}
			if len(n.Children) > 0 {
				walk(n.Children, append(path[:len(path):len(path)], n.Item.Label))
			}
		}
	}
	walk(nodes, nil)
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	return strings.ReplaceAll(s, "]", "\\]")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

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


// Package opml provides exporters for OPML and Netscape HTML.
package opml

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/export"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

func init() {
	adapter.RegisterExporter(&OPMLAdapter{})
	adapter.RegisterExporter(&HTMLAdapter{})
}

// OPMLAdapter exports favorites to OPML.
type OPMLAdapter struct{}

// Name returns the adapter identifier.
func (a *OPMLAdapter) Name() string { return "opml" }

// DisplayName returns a human-friendly name.
func (a *OPMLAdapter) DisplayName() string { return "OPML" }

// Extensions returns file extensions for this format.
func (a *OPMLAdapter) Extensions() []string { return []string{".opml", ".xml"} }

// Render exports the tree as nested outlines. Folders and directories
// become outlines with children, the rest become link outlines.
func (a *OPMLAdapter) Render(doc *export.Document, opts export.Options) ([]byte, error) {
	out := opmlDocument{
		Version: "2.0",
		Head:    opmlHead{Title: doc.TitleOrDefault()},
		Body:    opmlBody{Outlines: outlines(doc.Nodes)},
	}
	if opts.IncludeMetadata {
		generated := doc.Generated
		if generated.IsZero() {
			generated = time.Now()
		}
		out.Head.DateCreated = generated.Format(time.RFC1123)
	}

	data, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling OPML: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated,omitempty"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Text     string        `xml:"text,attr"`
	Type     string        `xml:"type,attr,omitempty"`
	HTMLURL  string        `xml:"htmlUrl,attr,omitempty"`
	Children []opmlOutline `xml:"outline,omitempty"`
}

func outlines(nodes []*favorite.Node) []opmlOutline {
	var out []opmlOutline
	for _, n := range nodes {
		o := opmlOutline{Text: n.Item.Label}
		if !n.Item.IsFolder() {
			o.Type = "link"
			o.HTMLURL = export.Href(n.Item)
		}
		o.Children = outlines(n.Children)
		out = append(out, o)
	}
	return out
}

// HTMLAdapter exports favorites to the Netscape bookmark format that
// browsers import.
type HTMLAdapter struct{}

// Name returns the adapter identifier.
func (a *HTMLAdapter) Name() string { return "html" }

// DisplayName returns a human-friendly name.
func (a *HTMLAdapter) DisplayName() string { return "Netscape HTML" }

// Extensions returns file extensions for this format.
func (a *HTMLAdapter) Extensions() []string { return []string{".html", ".htm"} }

// Render exports the tree as Netscape HTML. Folders become H3 headings;
// directory resources are links followed by their children.
func (a *HTMLAdapter) Render(doc *export.Document, opts export.Options) ([]byte, error) {
	var sb strings.Builder
	title := html.EscapeString(doc.TitleOrDefault())

	sb.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	sb.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	fmt.Fprintf(&sb, "<TITLE>%s</TITLE>\n<H1>%s</H1>\n", title, title)
	sb.WriteString("<DL><p>\n")
	renderHTML(&sb, doc.Nodes, 1)
	sb.WriteString("</DL><p>\n")

	return []byte(sb.String()), nil
}

func renderHTML(sb *strings.Builder, nodes []*favorite.Node, depth int) {
	indent := strings.Repeat("    ", depth)

	for _, n := range nodes {
		if n.Item.IsFolder() {
			fmt.Fprintf(sb, "%s<DT><H3>%s</H3>\n", indent, html.EscapeString(n.Item.Label))
			fmt.Fprintf(sb, "%s<DL><p>\n", indent)
			renderHTML(sb, n.Children, depth+1)
			fmt.Fprintf(sb, "%s</DL><p>\n", indent)
			continue
		}

		fmt.Fprintf(sb, "%s<DT><A HREF=\"%s\">%s</A>\n",
			indent, html.EscapeString(export.Href(n.Item)), html.EscapeString(n.Item.Label))
		if len(n.Children) > 0 {
			fmt.Fprintf(sb, "%s<DL><p>\n", indent)
			renderHTML(sb, n.Children, depth+1)
			fmt.Fprintf(sb, "%s</DL><p>\n", indent)
		}
	}
}

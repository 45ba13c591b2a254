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


// Package opml imports bookmarks from OPML and Netscape HTML files.
package opml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

var (
	folderPattern = regexp.MustCompile(`(?i)<DT><H3[^>]*>([^<]*)</H3>`)
	linkPattern   = regexp.MustCompile(`(?i)<DT><A\s+HREF="([^"]+)"[^>]*>([^<]*)</A>`)
	dlStart       = regexp.MustCompile(`(?i)<DL>`)
	dlEnd         = regexp.MustCompile(`(?i)</DL>`)
)

func init() {
	adapter.RegisterImporter(&Adapter{})
}

// Adapter reads bookmarks from an OPML or Netscape HTML file given as the
// custom path.
type Adapter struct {
	path string
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string { return "opml" }

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string { return "OPML/HTML Import" }

// Available reports whether a file path is configured.
func (a *Adapter) Available() bool { return a.path != "" }

// Path returns the configured file path.
func (a *Adapter) Path() string { return a.path }

// Configure sets the file to read.
func (a *Adapter) Configure(cfg importer.Config) error {
	a.path = cfg.CustomPath
	return nil
}

// ListProfiles returns nothing; files have no profiles.
func (a *Adapter) ListProfiles() ([]importer.ProfileInfo, error) {
	return nil, nil
}

// Read parses the configured file, detecting the format from its content.
func (a *Adapter) Read(ctx context.Context) ([]importer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.path == "" {
		return nil, fmt.Errorf("opml: no file path configured")
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return Parse(data)
}

// Parse decodes OPML or Netscape HTML bookmark data.
func Parse(data []byte) ([]importer.Record, error) {
	upper := bytes.ToUpper(data)
	if bytes.Contains(upper, []byte("<!DOCTYPE NETSCAPE-BOOKMARK-FILE")) || bytes.Contains(upper, []byte("<DL>")) {
		return parseNetscape(string(data)), nil
	}
	return parseOPML(data)
}

type document struct {
	XMLName xml.Name `xml:"opml"`
	Body    struct {
		Outlines []outline `xml:"outline"`
	} `xml:"body"`
}

type outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr"`
	HTMLURL  string    `xml:"htmlUrl,attr"`
	XMLURL   string    `xml:"xmlUrl,attr"`
	URL      string    `xml:"url,attr"`
	Children []outline `xml:"outline"`
}

func parseOPML(data []byte) ([]importer.Record, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing OPML: %w", err)
	}

	var records []importer.Record
	walkOPML(doc.Body.Outlines, nil, &records)
	return records, nil
}

func walkOPML(outlines []outline, path []string, records *[]importer.Record) {
	for _, o := range outlines {
		title := o.Text
		if title == "" {
			title = o.Title
		}

		if len(o.Children) > 0 {
			walkOPML(o.Children, append(slices.Clone(path), title), records)
			continue
		}

		url := o.HTMLURL
		if url == "" {
			url = o.URL
		}
		if url == "" {
			url = o.XMLURL
		}
		if url == "" {
			continue
		}
		if title == "" {
			title = url
		}

		*records = append(*records, importer.Record{Title: title, Location: url, Folders: path})
	}
}

// parseNetscape reads the line-oriented Netscape bookmark format. Each <DL>
// opens the most recent <H3> folder, or an unnamed level when none is
// pending.
func parseNetscape(content string) []importer.Record {
	var records []importer.Record
	var path []string
	var named []bool
	pending := ""
	hasPending := false

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)

		if m := folderPattern.FindStringSubmatch(line); m != nil {
			pending = html.UnescapeString(m[1])
			hasPending = true
			continue
		}

		if dlStart.MatchString(line) {
			if hasPending {
				path = append(slices.Clone(path), pending)
			}
			named = append(named, hasPending)
			pending, hasPending = "", false
			continue
		}

		if dlEnd.MatchString(line) {
			if n := len(named); n > 0 {
				if named[n-1] {
					path = path[:len(path)-1]
					if len(path) == 0 {
						path = nil
					}
				}
				named = named[:n-1]
			}
			continue
		}

		if m := linkPattern.FindStringSubmatch(line); m != nil {
			url := html.UnescapeString(m[1])
			title := html.UnescapeString(m[2])
			if title == "" {
				title = url
			}
			records = append(records, importer.Record{Title: title, Location: url, Folders: path})
		}
	}

	return records
}

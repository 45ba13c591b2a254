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


// Package safari imports bookmarks from Safari's Bookmarks.plist.
package safari

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"howett.net/plist"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

const (
	typeLeaf = "WebBookmarkTypeLeaf"
	typeList = "WebBookmarkTypeList"
)

func init() {
	adapter.RegisterImporter(New())
}

// Adapter implements importer.Adapter for Safari. Without a custom path it
// is only available on macOS.
type Adapter struct {
	config importer.Config
	path   string
}

// New creates a Safari adapter.
func New() *Adapter {
	a := &Adapter{}
	a.path = a.bookmarkPath()
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "safari"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Apple Safari"
}

// Available reports whether the plist exists.
func (a *Adapter) Available() bool {
	if a.path == "" {
		return false
	}
	_, err := os.Stat(a.path)
	return err == nil
}

// Configure applies configuration to the adapter.
func (a *Adapter) Configure(cfg importer.Config) error {
	a.config = cfg
	a.path = a.bookmarkPath()
	return nil
}

// Path returns the plist path.
func (a *Adapter) Path() string {
	return a.path
}

// ListProfiles returns the single Safari profile.
func (a *Adapter) ListProfiles() ([]importer.ProfileInfo, error) {
	if !a.Available() {
		return nil, nil
	}
	return []importer.ProfileInfo{{Name: "default", Path: a.path, IsDefault: true}}, nil
}

// Read decodes the plist and returns its leaves in document order.
func (a *Adapter) Read(ctx context.Context) ([]importer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.path == "" {
		return nil, fmt.Errorf("safari: bookmarks are only available on macOS")
	}

	file, err := os.Open(a.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var root node
	if err := plist.NewDecoder(file).Decode(&root); err != nil {
		return nil, fmt.Errorf("safari: decoding %s: %w", a.path, err)
	}

	var records []importer.Record
	walk(root, nil, &records)
	return records, nil
}

func (a *Adapter) bookmarkPath() string {
	if a.config.CustomPath != "" {
		return a.config.CustomPath
	}
	if runtime.GOOS != "darwin" {
		return ""
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Safari", "Bookmarks.plist")
}

type node struct {
	WebBookmarkType string            `plist:"WebBookmarkType"`
	Title           string            `plist:"Title,omitempty"`
	URLString       string            `plist:"URLString,omitempty"`
	URIDictionary   map[string]string `plist:"URIDictionary,omitempty"`
	Children        []node            `plist:"Children,omitempty"`
}

func walk(n node, path []string, records *[]importer.Record) {
	switch n.WebBookmarkType {
	case typeLeaf:
		url := n.URLString
		if url == "" {
			url = n.URIDictionary[""]
		}
		if url == "" {
			return
		}

		title := n.Title
		if title == "" {
			title = n.URIDictionary["title"]
		}
		if title == "" {
			title = url
		}
		*records = append(*records, importer.Record{Title: title, Location: url, Folders: path})

	case typeList:
		if n.Title != "" {
			path = append(slices.Clone(path), n.Title)
		}
		for _, child := range n.Children {
			walk(child, path, records)
		}

	default:
		for _, child := range n.Children {
			walk(child, path, records)
		}
	}
}

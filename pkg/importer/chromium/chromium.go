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


// Package chromium imports bookmarks from Chromium-based browsers.
package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

// chromiumPaths maps browser names to their config directories per platform.
var chromiumPaths = map[string]map[string]string{
	"chrome": {
		"linux":   ".config/google-chrome",
		"darwin":  "Library/Application Support/Google/Chrome",
		"windows": "Google/Chrome/User Data",
	},
	"edge": {
		"linux":   ".config/microsoft-edge",
		"darwin":  "Library/Application Support/Microsoft Edge",
		"windows": "Microsoft/Edge/User Data",
	},
	"chromium": {
		"linux":   ".config/chromium",
		"darwin":  "Library/Application Support/Chromium",
		"windows": "Chromium/User Data",
	},
	"brave": {
		"linux":   ".config/BraveSoftware/Brave-Browser",
		"darwin":  "Library/Application Support/BraveSoftware/Brave-Browser",
		"windows": "BraveSoftware/Brave-Browser/User Data",
	},
}

var displayNames = map[string]string{
	"chrome":   "Google Chrome",
	"edge":     "Microsoft Edge",
	"chromium": "Chromium",
	"brave":    "Brave",
}

// rootOrder is the order the well-known roots are read in. Unknown roots
// follow in name order.
var rootOrder = []string{"bookmark_bar", "other", "synced"}

func init() {
	for _, browser := range []string{"chrome", "edge", "chromium", "brave"} {
		adapter.RegisterImporter(New(browser))
	}
}

// Adapter implements importer.Adapter for one Chromium-based browser.
type Adapter struct {
	browser  string
	base     string
	config   importer.Config
	profiles []importer.ProfileInfo
}

// New creates an adapter for browser.
func New(browser string) *Adapter {
	a := &Adapter{browser: browser, base: basePath(browser)}
	a.profiles = a.discoverProfiles()
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return a.browser
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	if name, ok := displayNames[a.browser]; ok {
		return name
	}
	return cases.Title(language.English).String(a.browser)
}

// Available reports whether a bookmark file exists.
func (a *Adapter) Available() bool {
	if a.config.CustomPath != "" {
		_, err := os.Stat(a.config.CustomPath)
		return err == nil
	}
	return len(a.profiles) > 0
}

// Configure applies configuration and rediscovers profiles.
func (a *Adapter) Configure(cfg importer.Config) error {
	a.config = cfg
	a.profiles = a.discoverProfiles()
	return nil
}

// Path returns the bookmark file that Read would use.
func (a *Adapter) Path() string {
	if a.config.CustomPath != "" {
		return a.config.CustomPath
	}
	if p, ok := a.profile(); ok {
		return p.Path
	}
	return a.base
}

// ListProfiles returns the discovered profiles.
func (a *Adapter) ListProfiles() ([]importer.ProfileInfo, error) {
	return slices.Clone(a.profiles), nil
}

// Read returns the bookmarks of the configured profile, or the default
// profile when none is configured.
func (a *Adapter) Read(ctx context.Context) ([]importer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if a.config.CustomPath != "" {
		return readFile(a.config.CustomPath)
	}

	p, ok := a.profile()
	if !ok {
		if a.config.Profile != "" {
			return nil, fmt.Errorf("%s: profile %q not found", a.browser, a.config.Profile)
		}
		return nil, fmt.Errorf("%s: no profiles found under %s", a.browser, a.base)
	}
	return readFile(p.Path)
}

func (a *Adapter) profile() (importer.ProfileInfo, bool) {
	for _, p := range a.profiles {
		if a.config.Profile == "" && p.IsDefault {
			return p, true
		}
		if a.config.Profile != "" && p.Name == a.config.Profile {
			return p, true
		}
	}
	return importer.ProfileInfo{}, false
}

func basePath(browser string) string {
	relPath, ok := chromiumPaths[browser][runtime.GOOS]
	if !ok {
		return ""
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("LOCALAPPDATA")
	} else {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, relPath)
}

// discoverProfiles lists the Default and "Profile N" directories that hold
// a Bookmarks file. The Default profile, or else the first one found, is
// marked as the default.
func (a *Adapter) discoverProfiles() []importer.ProfileInfo {
	if a.base == "" {
		return nil
	}

	entries, err := os.ReadDir(a.base)
	if err != nil {
		return nil
	}

	var profiles []importer.ProfileInfo
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || (name != "Default" && !strings.HasPrefix(name, "Profile ")) {
			continue
		}
		path := filepath.Join(a.base, name, "Bookmarks")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		profiles = append(profiles, importer.ProfileInfo{
			Name:      name,
			Path:      path,
			IsDefault: name == "Default",
		})
	}

	if len(profiles) > 0 && !slices.ContainsFunc(profiles, func(p importer.ProfileInfo) bool { return p.IsDefault }) {
		profiles[0].IsDefault = true
	}
	return profiles
}

type node struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Children []node `json:"children"`
}

func readFile(path string) ([]importer.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) ([]importer.Record, error) {
	var doc struct {
		Roots map[string]json.RawMessage `json:"roots"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing bookmarks: %w", err)
	}

	names := make([]string, 0, len(doc.Roots))
	for name := range doc.Roots {
		if !slices.Contains(rootOrder, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	names = append(slices.Clone(rootOrder), names...)

	var records []importer.Record
	for _, name := range names {
		raw, ok := doc.Roots[name]
		if !ok {
			continue
		}
		var root node
		if err := json.Unmarshal(raw, &root); err != nil || root.Type != "folder" {
			continue
		}
		walk(root, nil, &records)
	}
	return records, nil
}

func walk(n node, path []string, records *[]importer.Record) {
	if n.Name != "" {
		path = append(slices.Clone(path), n.Name)
	}

	for _, child := range n.Children {
		switch child.Type {
		case "url":
			*records = append(*records, importer.Record{
				Title:    child.Name,
				Location: child.URL,
				Folders:  path,
			})
		case "folder":
			walk(child, path, records)
		}
	}
}

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


// Package firefox imports bookmarks from Firefox profiles.
package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

// firefoxPaths maps platform to the Firefox profiles directory.
var firefoxPaths = map[string]string{
	"linux":   ".mozilla/firefox",
	"darwin":  "Library/Application Support/Firefox/Profiles",
	"windows": "Mozilla/Firefox/Profiles",
}

const (
	typeBookmark = 1
	typeFolder   = 2

	tagsRootID = 4

	// maxDepth bounds folder-chain walks in a damaged database.
	maxDepth = 64
)

func init() {
	adapter.RegisterImporter(New())
}

// Adapter implements importer.Adapter for Firefox.
type Adapter struct {
	dir     string
	config  importer.Config
	path    string
	profile string
}

// New creates a Firefox adapter.
func New() *Adapter {
	a := &Adapter{dir: profilesDir()}
	a.path, a.profile = a.findDatabase()
	return a
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "firefox"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "Mozilla Firefox"
}

// Available reports whether the places database exists.
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
	a.path, a.profile = a.findDatabase()
	return nil
}

// Path returns the database path.
func (a *Adapter) Path() string {
	return a.path
}

// ListProfiles returns profiles that contain a places database.
func (a *Adapter) ListProfiles() ([]importer.ProfileInfo, error) {
	if a.dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, nil
	}

	var profiles []importer.ProfileInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		places := filepath.Join(a.dir, entry.Name(), "places.sqlite")
		if _, err := os.Stat(places); err != nil {
			continue
		}
		profiles = append(profiles, importer.ProfileInfo{
			Name:      entry.Name(),
			Path:      places,
			IsDefault: entry.Name() == a.profile,
		})
	}
	return profiles, nil
}

// Read returns the bookmarks of the selected profile. The database is
// copied first because a running Firefox keeps it locked.
func (a *Adapter) Read(ctx context.Context) ([]importer.Record, error) {
	if a.path == "" {
		return nil, fmt.Errorf("firefox: no profile found")
	}

	tmp, err := copyToTemp(a.path)
	if err != nil {
		return nil, fmt.Errorf("firefox: copying %s: %w", a.path, err)
	}
	defer os.Remove(tmp)

	db, err := sql.Open("sqlite3", "file:"+tmp+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return readDB(ctx, db)
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "favorites-places-*.sqlite")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func profilesDir() string {
	relPath, ok := firefoxPaths[runtime.GOOS]
	if !ok {
		return ""
	}

	var base string
	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
	} else {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, relPath)
}

func (a *Adapter) findDatabase() (path, profile string) {
	if a.config.CustomPath != "" {
		return a.config.CustomPath, filepath.Base(filepath.Dir(a.config.CustomPath))
	}
	if a.dir == "" {
		return "", ""
	}
	if a.config.Profile != "" {
		return filepath.Join(a.dir, a.config.Profile, "places.sqlite"), a.config.Profile
	}

	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return "", ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		places := filepath.Join(a.dir, entry.Name(), "places.sqlite")
		if _, err := os.Stat(places); err == nil {
			return places, entry.Name()
		}
	}
	return "", ""
}

type folder struct {
	parent int64
	title  string
}

func readDB(ctx context.Context, db *sql.DB) ([]importer.Record, error) {
	folders := make(map[int64]folder)

	rows, err := db.QueryContext(ctx, "SELECT id, parent, title FROM moz_bookmarks WHERE type = ?", typeFolder)
	if err != nil {
		return nil, fmt.Errorf("firefox: reading folders: %w", err)
	}
	for rows.Next() {
		var id, parent int64
		var title sql.NullString
		if err := rows.Scan(&id, &parent, &title); err != nil {
			rows.Close()
			return nil, err
		}
		folders[id] = folder{parent: parent, title: title.String}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.QueryContext(ctx, `
		SELECT b.title, p.url, b.parent
		FROM moz_bookmarks b
		JOIN moz_places p ON b.fk = p.id
		WHERE b.type = ?
		  AND p.url IS NOT NULL
		  AND p.url NOT LIKE 'place:%'
		ORDER BY b.parent, b.position`, typeBookmark)
	if err != nil {
		return nil, fmt.Errorf("firefox: reading bookmarks: %w", err)
	}
	defer rows.Close()

	var records []importer.Record
	for rows.Next() {
		var title sql.NullString
		var url string
		var parent int64
		if err := rows.Scan(&title, &url, &parent); err != nil {
			return nil, err
		}

		path, tagged := folderPath(folders, parent)
		if tagged {
			continue
		}

		name := title.String
		if name == "" {
			name = url
		}
		records = append(records, importer.Record{
			Title:    name,
			Location: url,
			Folders:  path,
		})
	}
	return records, rows.Err()
}

// folderPath returns the titled folders from the root down to id, and
// whether id lies under the tags root.
func folderPath(folders map[int64]folder, id int64) ([]string, bool) {
	var path []string
	current := id
	for range maxDepth {
		if current == tagsRootID {
			return nil, true
		}
		f, ok := folders[current]
		if !ok {
			break
		}
		if f.title != "" {
			path = append(path, f.title)
		}
		current = f.parent
	}
	slices.Reverse(path)
	return path, false
}

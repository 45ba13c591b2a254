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

// Package store persists the favorites list and a handful of named scalar
// settings.
//
// Three backends are available:
//
//   - file: a YAML document {resources: [...], settings: {...}}
//   - sqlite: an entries table ordered by position plus a settings table
//   - badger: the list as one JSON value plus one key per setting
//
// Every Save replaces the whole list. There is no transaction spanning a
// Load and the following Save; the last Save wins.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

// Scalar setting keys.
const (
	KeyCurrentGroup = "currentGroup"
	KeySortOrder    = "sortOrder"
	KeyGroups       = "groups"
)

// Store is the persistence collaborator of the favorites engine.
type Store interface {
	// Load returns the persisted list. A store that was never written
	// returns an empty list.
	Load(ctx context.Context) ([]favorite.Entry, error)

	// Save replaces the persisted list.
	Save(ctx context.Context, list []favorite.Entry) error

	// Scalar returns the value of a setting, or "" when unset.
	Scalar(ctx context.Context, key string) (string, error)

	// SetScalar stores a setting. An empty value removes it.
	SetScalar(ctx context.Context, key, value string) error

	// Path returns the file or directory the store lives in.
	Path() string

	Close() error
}

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config selects and locates a backend.
type Config struct {
	Backend string
	Path    string
}

// DefaultPath returns the default location for backend under
// $XDG_DATA_HOME/favorites.
func DefaultPath(backend string) string {
	dir := filepath.Join(xdg.DataHome, "favorites")
	switch backend {
	case BackendSQLite:
		return filepath.Join(dir, "favorites.db")
	case BackendBadger:
		return filepath.Join(dir, "badger")
	default:
		return filepath.Join(dir, "favorites.yaml")
	}
}

// Open opens the configured backend, creating it when needed.
func Open(cfg Config) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendFile
	}
	path := cfg.Path
	if path == "" {
		path = DefaultPath(backend)
	}

	switch backend {
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendBadger:
		return OpenBadger(path)
	}
	return nil, fmt.Errorf("unknown store backend %q (want file, sqlite or badger)", backend)
}

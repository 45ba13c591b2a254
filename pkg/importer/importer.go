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


// Package importer defines the Adapter interface for bookmark sources.
//
// Importers read bookmarks from a browser profile or an exported file and
// return them as Records. Each importer registers itself with the adapter
// registry from init and is selected by name on the command line:
//
//	favorites import firefox --profile work
//
// Records are turned into favorites by service.Manager.Import, which
// recreates the source folder chain inside the target group.
package importer

import (
	"context"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

// Record is a single bookmark read from a source.
type Record = favorite.ImportRecord

// Adapter is the interface for bookmark sources.
type Adapter interface {
	// Name returns the identifier used on the command line, for example
	// "chrome" or "firefox".
	Name() string

	// DisplayName returns a human-friendly name.
	DisplayName() string

	// Available reports whether the source exists on this system.
	Available() bool

	// Path returns the file the adapter reads.
	Path() string

	// Configure applies runtime configuration. It is called before Read.
	Configure(cfg Config) error

	// ListProfiles returns the profiles the source knows about. Sources
	// without profiles return a single entry.
	ListProfiles() ([]ProfileInfo, error)

	// Read returns every bookmark in the configured profile, in source
	// order, with Folders set to the path from the source root.
	Read(ctx context.Context) ([]Record, error)
}

// Config holds adapter configuration passed at runtime.
type Config struct {
	// Profile selects a browser profile. Empty means the default profile.
	Profile string

	// CustomPath overrides the discovered bookmark file.
	CustomPath string

	// Options holds adapter-specific options.
	Options map[string]any
}

// ProfileInfo describes a browser profile.
type ProfileInfo struct {
	Name      string
	Path      string
	IsDefault bool
}

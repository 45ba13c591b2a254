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

package favorite

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Workspace tells how favorited paths are stored.
//
// In a single-root workspace, paths under the root are stored relative to
// it. Multi-root workspaces always store absolute paths.
type Workspace interface {
	IsMultiRoot() bool
	SingleRootPath() string
}

// IDFunc generates entry identifiers.
type IDFunc func() string

// NewID returns a new globally unique entry identifier.
func NewID() string {
	return uuid.New().String()
}

var uriPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+\-.]*://`)

// IsURI reports whether a stored location is a serialized URI rather than a
// filesystem path.
func IsURI(location string) bool {
	return uriPattern.MatchString(location)
}

// StoredLocation converts a user supplied path or URI to the form persisted
// in FilePath. file:// URIs become paths; other URIs are kept verbatim.
// Paths are made absolute and then, in a single-root workspace, relative to
// the root when they lie inside it.
func StoredLocation(ws Workspace, location string) (string, error) {
	if IsURI(location) {
		u, err := url.Parse(location)
		if err != nil {
			return "", err
		}
		if !strings.EqualFold(u.Scheme, "file") {
			return location, nil
		}
		location = filepath.FromSlash(u.Path)
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return "", err
	}

	if ws == nil || ws.IsMultiRoot() || ws.SingleRootPath() == "" {
		return abs, nil
	}

	rel, err := filepath.Rel(ws.SingleRootPath(), abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs, nil
	}
	return rel, nil
}

// Resolve returns the absolute form of a stored path. URIs and absolute
// paths are returned unchanged; relative paths are joined to the single
// root.
func Resolve(ws Workspace, stored string) string {
	if IsURI(stored) || filepath.IsAbs(stored) {
		return stored
	}
	if ws != nil && !ws.IsMultiRoot() && ws.SingleRootPath() != "" {
		return filepath.Join(ws.SingleRootPath(), stored)
	}
	if abs, err := filepath.Abs(stored); err == nil {
		return abs
	}
	return stored
}

// JoinLocation appends a child name to a stored path or URI.
func JoinLocation(parent, name string) string {
	if IsURI(parent) {
		u, err := url.Parse(parent)
		if err != nil {
			return strings.TrimSuffix(parent, "/") + "/" + name
		}
		return u.JoinPath(name).String()
	}
	return filepath.Join(parent, name)
}

// BaseName returns the last element of a stored path or URI.
func BaseName(location string) string {
	if IsURI(location) {
		u, err := url.Parse(location)
		if err == nil {
			p := strings.TrimSuffix(u.Path, "/")
			if p == "" {
				if u.Host != "" {
					return u.Host
				}
				return location
			}
			return path.Base(p)
		}
		return path.Base(strings.TrimSuffix(location, "/"))
	}
	return filepath.Base(location)
}

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

// Package probe classifies favorite locations and lists directories.
//
// Paths and file:// URIs are checked on the local filesystem. http and
// https URIs are reported as files without any network access, so remote
// links show up as leaves. Other schemes are reported missing.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/logging"
)

// FS probes the local filesystem. The zero value is ready to use.
type FS struct {
	// Hidden includes dot files in directory listings.
	Hidden bool
}

// Probe implements favorite.Prober. A location that does not exist is
// StatMissing with a nil error; any other stat failure is returned.
func (p FS) Probe(ctx context.Context, location string) (favorite.Stat, error) {
	if err := ctx.Err(); err != nil {
		return favorite.StatMissing, err
	}

	path, remote, err := localPath(location)
	if err != nil {
		return favorite.StatMissing, err
	}
	if remote {
		return favorite.StatFile, nil
	}
	if path == "" {
		return favorite.StatMissing, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return favorite.StatMissing, nil
		}
		logging.Get("probe").Debug("stat failed", "path", path, "err", err)
		return favorite.StatMissing, err
	}
	if info.IsDir() {
		return favorite.StatDirectory, nil
	}
	return favorite.StatFile, nil
}

// List implements favorite.Lister. Names come back in directory order.
func (p FS) List(ctx context.Context, location string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, remote, err := localPath(location)
	if err != nil {
		return nil, err
	}
	if remote || path == "" {
		return nil, fmt.Errorf("cannot list %s", location)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !p.Hidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// localPath maps a location to a filesystem path. remote is true for http
// and https URIs; an empty path with remote false means the scheme is not
// supported.
func localPath(location string) (path string, remote bool, err error) {
	if !favorite.IsURI(location) {
		return filepath.Clean(location), false, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", false, fmt.Errorf("parsing %s: %w", location, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return filepath.FromSlash(u.Path), false, nil
	case "http", "https":
		return "", true, nil
	default:
		return "", false, nil
	}
}

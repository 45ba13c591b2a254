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

// Package workspace describes the set of root directories favorites are
// stored against.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Roots is an ordered set of absolute root directories.
type Roots []string

// New returns the roots for paths, made absolute. With no paths the
// current working directory is the single root.
func New(paths ...string) (Roots, error) {
	if len(paths) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		return Roots{wd}, nil
	}

	roots := make(Roots, 0, len(paths))
	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving root %s: %w", p, err)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		roots = append(roots, abs)
	}
	return roots, nil
}

// IsMultiRoot reports whether more than one root is open.
func (r Roots) IsMultiRoot() bool {
	return len(r) > 1
}

// SingleRootPath returns the only root, or "" when there is not exactly one.
func (r Roots) SingleRootPath() string {
	if len(r) != 1 {
		return ""
	}
	return r[0]
}

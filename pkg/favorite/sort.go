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
	"fmt"
	"slices"
	"strings"
)

// SortMode orders the items of each tree level.
type SortMode string

const (
	SortManual SortMode = "MANUAL"
	SortAsc    SortMode = "ASC"
	SortDesc   SortMode = "DESC"
)

// ParseSortMode accepts the persisted values and the lowercase aliases
// "manual", "asc"/"ascending" and "desc"/"descending".
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "":
		return SortManual, nil
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	}
	return SortManual, fmt.Errorf("unknown sort order %q (want manual, asc or desc)", s)
}

// String returns the lowercase name of the mode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "manual"
	}
}

// SortItems returns items ordered by mode. Manual keeps the input order.
// Ascending and descending put folders and directories before files in both
// directions and then compare labels; ties keep their input order.
func SortItems(items []Item, mode SortMode) []Item {
	out := slices.Clone(items)
	if mode != SortAsc && mode != SortDesc {
		return out
	}

	slices.SortStableFunc(out, func(a, b Item) int {
		aDir, bDir := a.IsDir(), b.IsDir()
		if aDir && !bDir {
			return -1
		}
		if !aDir && bDir {
			return 1
		}

		c := strings.Compare(a.Label, b.Label)
		if mode == SortDesc {
			c = -c
		}
		return c
	})
	return out
}

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
	"strings"
)

// ImportRecord is a bookmark read from an external source.
type ImportRecord struct {
	// Title is the bookmark's display name; it becomes the entry Title.
	Title string

	// Location is the bookmark URI.
	Location string

	// Folders is the folder chain from the source root, outermost first.
	Folders []string
}

// ImportStats summarizes an ImportRecords call.
type ImportStats struct {
	Added   int
	Skipped int
	Folders int
}

// ImportRecords appends records to the view's group as URI resources.
//
// Folder chains are created as needed. A folder is reused when a folder of
// the same name already sits under the same parent. When the name is taken
// elsewhere in the group, " (2)", " (3)", ... is appended until the name is
// free or matches a folder under the same parent, so importing twice reuses
// the folders of the first run. Records without a URI location and records
// already present under their folder are skipped.
func ImportRecords(list []Entry, view View, records []ImportRecord, newID IDFunc) ([]Entry, ImportStats) {
	if newID == nil {
		newID = NewID
	}

	group := view.GroupOrDefault()
	out := clone(list)
	var stats ImportStats

	for _, r := range records {
		location := strings.TrimSpace(r.Location)
		if !IsURI(location) {
			stats.Skipped++
			continue
		}

		parent := ""
		for _, name := range r.Folders {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			id, created := importFolder(out, group, name, parent)
			if created {
				id = newID()
				out = append(out, Entry{
					ID:       id,
					Kind:     KindFolder,
					Group:    group,
					ParentID: parent,
					Name:     importFolderName(out, group, name),
				})
				stats.Folders++
			}
			parent = id
		}

		if HasResource(out, nil, group, location, parent) {
			stats.Skipped++
			continue
		}

		out = append(out, Entry{
			ID:       newID(),
			Kind:     KindResource,
			Group:    group,
			ParentID: parent,
			FilePath: location,
			Title:    strings.TrimSpace(r.Title),
		})
		stats.Added++
	}

	return out, stats
}

// importFolder finds the folder an import of name under parent lands in.
// It returns created=true when no existing folder qualifies.
func importFolder(list []Entry, group, name, parent string) (id string, created bool) {
	for n := 1; ; n++ {
		candidate := suffixed(name, n)
		f, ok := FolderByName(list, group, candidate)
		if !ok {
			return "", true
		}
		if f.ParentID == parent {
			return f.ID, false
		}
	}
}

// importFolderName returns the first free name in the suffix sequence.
func importFolderName(list []Entry, group, name string) string {
	for n := 1; ; n++ {
		candidate := suffixed(name, n)
		if _, taken := FolderByName(list, group, candidate); !taken {
			return candidate
		}
	}
}

func suffixed(name string, n int) string {
	if n == 1 {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, n)
}

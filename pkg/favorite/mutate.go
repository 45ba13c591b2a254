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
)

// Target identifies the resource a delete or reorder applies to.
//
// When both the target and a candidate entry carry an ID they are compared
// by ID; otherwise FilePath is compared.
type Target struct {
	ID       string
	FilePath string
	ParentID string
}

// TargetOf returns the target that designates e.
func TargetOf(e Entry) Target {
	return Target{ID: e.ID, FilePath: e.FilePath, ParentID: e.ParentID}
}

// AddResource returns a new list with e appended. Duplicate suppression is
// the caller's job; see HasResource.
func AddResource(list []Entry, e Entry) []Entry {
	if e.Kind == "" {
		e.Kind = KindResource
	}
	out := make([]Entry, len(list), len(list)+1)
	copy(out, list)
	return append(out, e)
}

// HasResource reports whether group already holds a resource with the same
// file path and parent. Paths are compared verbatim and after resolving both
// sides against the workspace.
func HasResource(list []Entry, ws Workspace, group, filePath, parentID string) bool {
	resolved := Resolve(ws, filePath)
	for _, e := range list {
		if e.IsFolder() || !inGroup(e, group) || e.ParentID != parentID {
			continue
		}
		if e.FilePath == filePath || Resolve(ws, e.FilePath) == resolved {
			return true
		}
	}
	return false
}

// FindFolder returns the folder with the given ID in group.
func FindFolder(list []Entry, group, id string) (Entry, bool) {
	for _, e := range list {
		if e.IsFolder() && inGroup(e, group) && e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// FolderByName returns the folder called name in group. Folder names are
// unique within a group, so there is at most one.
func FolderByName(list []Entry, group, name string) (Entry, bool) {
	for _, e := range list {
		if e.IsFolder() && inGroup(e, group) && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// AddFolder appends a new folder to the view's group. The name must not be
// used by any other folder of the group, at any depth.
func AddFolder(list []Entry, view View, name, parentID string, newID IDFunc) ([]Entry, error) {
	if name == "" {
		return list, fmt.Errorf("empty folder name: %w", ErrNoOp)
	}

	group := view.GroupOrDefault()
	if _, taken := FolderByName(list, group, name); taken {
		return list, &NameError{Name: name, Group: group}
	}

	if newID == nil {
		newID = NewID
	}

	return AddResource(list, Entry{
		ID:       newID(),
		Kind:     KindFolder,
		Group:    group,
		ParentID: parentID,
		Name:     name,
	}), nil
}

// RenameFolder changes the name of folder id. Only that entry's name
// changes; positions and every other field are preserved.
func RenameFolder(list []Entry, view View, id, newName string) ([]Entry, error) {
	group := view.GroupOrDefault()

	target, ok := FindFolder(list, group, id)
	if !ok {
		return list, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	if newName == "" || newName == target.Name {
		return list, fmt.Errorf("rename %q: %w", target.Name, ErrNoOp)
	}

	for _, e := range list {
		if e.IsFolder() && inGroup(e, group) && e.ID != id && e.Name == newName {
			return list, &NameError{Name: newName, Group: group}
		}
	}

	out := clone(list)
	for i := range out {
		if out[i].IsFolder() && out[i].ID == id {
			out[i].Name = newName
		}
	}
	return out, nil
}

// DeleteResource removes the resources of the view's group that match
// target. Folders are never removed. It returns ErrNotFound when nothing
// matched.
func DeleteResource(list []Entry, view View, ws Workspace, target Target) ([]Entry, error) {
	group := view.GroupOrDefault()
	uri := IsURI(target.FilePath)

	out := make([]Entry, 0, len(list))
	for _, e := range list {
		if e.IsFolder() || !inGroup(e, group) {
			out = append(out, e)
			continue
		}

		var match bool
		if target.ID != "" && e.ID != "" {
			match = e.ID == target.ID
		} else {
			samePath := e.FilePath == target.FilePath
			if !samePath && !uri {
				samePath = Resolve(ws, e.FilePath) == target.FilePath
			}
			match = samePath && e.ParentID == target.ParentID
		}

		if !match {
			out = append(out, e)
		}
	}

	if len(out) == len(list) {
		return list, fmt.Errorf("favorite %s: %w", target.describe(), ErrNotFound)
	}
	return out, nil
}

// DeleteFolder removes folder id, all of its folder descendants and every
// entry parented to any of them. Entries of other groups are untouched.
func DeleteFolder(list []Entry, view View, id string) ([]Entry, error) {
	group := view.GroupOrDefault()

	if _, ok := FindFolder(list, group, id); !ok {
		return list, fmt.Errorf("folder %s: %w", id, ErrNotFound)
	}

	remove := folderClosure(list, group, id)

	out := make([]Entry, 0, len(list))
	for _, e := range list {
		if !inGroup(e, group) {
			out = append(out, e)
			continue
		}
		if e.IsFolder() && remove[e.ID] {
			continue
		}
		if e.ParentID != "" && remove[e.ParentID] {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// folderClosure collects id and every folder below it in group. Each folder
// is visited once, so parent cycles terminate.
func folderClosure(list []Entry, group, id string) map[string]bool {
	seen := map[string]bool{id: true}
	stack := []string{id}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range list {
			if !e.IsFolder() || !inGroup(e, group) || e.ID == "" || e.ParentID != current {
				continue
			}
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			stack = append(stack, e.ID)
		}
	}
	return seen
}

func (t Target) describe() string {
	if t.ID != "" {
		return t.ID
	}
	return t.FilePath
}

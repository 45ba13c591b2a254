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

// Direction selects a reorder operation.
type Direction string

const (
	MoveUp       Direction = "up"
	MoveDown     Direction = "down"
	MoveToTop    Direction = "top"
	MoveToBottom Direction = "bottom"
)

// ParseDirection parses "up", "down", "top" or "bottom".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case MoveUp, MoveDown, MoveToTop, MoveToBottom:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q (want up, down, top or bottom)", s)
}

// Scope returns the absolute list positions of the resources of group whose
// parent is parentID, in list order. Folders never take part in reordering.
func Scope(list []Entry, group, parentID string) []int {
	var idx []int
	for i, e := range list {
		if e.IsFolder() || !inGroup(e, group) || e.ParentID != parentID {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Move repositions target within its sibling scope. Up and Down swap it with
// the previous or next scope member, wherever that member sits in the list;
// Top and Bottom reinsert it at the position of the first or last member.
//
// Move only returns the reordered list. Callers must switch the view to
// manual sorting before persisting it, or the active sort would hide the
// change.
func Move(list []Entry, view View, target Target, dir Direction) ([]Entry, error) {
	group := view.GroupOrDefault()
	scope := Scope(list, group, target.ParentID)

	pos := -1
	for i, abs := range scope {
		if target.matches(list[abs]) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return list, fmt.Errorf("favorite %s: %w", target.describe(), ErrNotFound)
	}

	first, last := 0, len(scope)-1
	current := scope[pos]

	switch dir {
	case MoveUp:
		if pos == first {
			return list, fmt.Errorf("already first: %w", ErrNoOp)
		}
		return swap(list, current, scope[pos-1]), nil
	case MoveDown:
		if pos == last {
			return list, fmt.Errorf("already last: %w", ErrNoOp)
		}
		return swap(list, current, scope[pos+1]), nil
	case MoveToTop:
		if pos == first {
			return list, fmt.Errorf("already first: %w", ErrNoOp)
		}
		return relocate(list, current, scope[first]), nil
	case MoveToBottom:
		if pos == last {
			return list, fmt.Errorf("already last: %w", ErrNoOp)
		}
		return relocate(list, current, scope[last]), nil
	default:
		return list, fmt.Errorf("unknown direction %q", dir)
	}
}

func (t Target) matches(e Entry) bool {
	if t.ID != "" && e.ID != "" {
		return t.ID == e.ID
	}
	return t.FilePath == e.FilePath
}

func swap(list []Entry, i, j int) []Entry {
	out := clone(list)
	out[i], out[j] = out[j], out[i]
	return out
}

// relocate removes the entry at from and inserts it at to, where to is an
// index into the original list.
func relocate(list []Entry, from, to int) []Entry {
	moved := list[from]

	rest := make([]Entry, 0, len(list))
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)

	out := make([]Entry, 0, len(list))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	return append(out, rest[to:]...)
}

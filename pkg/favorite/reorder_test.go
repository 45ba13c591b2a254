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

package favorite_test

import (
	"sort"
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	roots := []favorite.Entry{
		resource("r1", "/1", ""),
		resource("r2", "/2", ""),
		resource("r3", "/3", ""),
	}

	tests := []struct {
		name   string
		target string
		dir    favorite.Direction
		want   []string
	}{
		{"bottom", "r1", favorite.MoveToBottom, []string{"r2", "r3", "r1"}},
		{"top", "r3", favorite.MoveToTop, []string{"r3", "r1", "r2"}},
		{"up", "r2", favorite.MoveUp, []string{"r2", "r1", "r3"}},
		{"down", "r2", favorite.MoveDown, []string{"r1", "r3", "r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := favorite.Move(roots, defaultView, favorite.Target{ID: tt.target}, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(out))
			assert.Equal(t, []string{"r1", "r2", "r3"}, ids(roots), "input untouched")
		})
	}

	extremes := []struct {
		name   string
		target string
		dir    favorite.Direction
	}{
		{"up at top", "r1", favorite.MoveUp},
		{"top at top", "r1", favorite.MoveToTop},
		{"down at bottom", "r3", favorite.MoveDown},
		{"bottom at bottom", "r3", favorite.MoveToBottom},
	}

	for _, tt := range extremes {
		t.Run(tt.name, func(t *testing.T) {
			out, err := favorite.Move(roots, defaultView, favorite.Target{ID: tt.target}, tt.dir)
			require.ErrorIs(t, err, favorite.ErrNoOp)
			assert.Equal(t, roots, out)
		})
	}

	t.Run("single member scope is a no-op", func(t *testing.T) {
		list := []favorite.Entry{resource("r1", "/1", "")}
		for _, dir := range []favorite.Direction{favorite.MoveUp, favorite.MoveDown, favorite.MoveToTop, favorite.MoveToBottom} {
			_, err := favorite.Move(list, defaultView, favorite.Target{ID: "r1"}, dir)
			assert.ErrorIs(t, err, favorite.ErrNoOp, dir)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := favorite.Move(roots, defaultView, favorite.Target{ID: "nope"}, favorite.MoveUp)
		assert.ErrorIs(t, err, favorite.ErrNotFound)
	})
}

func TestMove_SkipsEntriesOutsideScope(t *testing.T) {
	list := []favorite.Entry{
		resource("r1", "/1", ""),
		folder("f1", "Work", ""),
		resource("c1", "/c1", "f1"),
		{ID: "o1", Kind: favorite.KindResource, FilePath: "/o", Group: "side"},
		resource("r2", "/2", ""),
		resource("c2", "/c2", "f1"),
	}

	t.Run("up swaps with the previous sibling", func(t *testing.T) {
		out, err := favorite.Move(list, defaultView, favorite.Target{ID: "r2"}, favorite.MoveUp)
		require.NoError(t, err)
		assert.Equal(t, []string{"r2", "f1", "c1", "o1", "r1", "c2"}, ids(out))
	})

	t.Run("down inside a folder", func(t *testing.T) {
		out, err := favorite.Move(list, defaultView, favorite.Target{ID: "c1", ParentID: "f1"}, favorite.MoveDown)
		require.NoError(t, err)
		assert.Equal(t, []string{"r1", "f1", "c2", "o1", "r2", "c1"}, ids(out))
	})

	t.Run("bottom lands after the last sibling", func(t *testing.T) {
		out, err := favorite.Move(list, defaultView, favorite.Target{ID: "r1"}, favorite.MoveToBottom)
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "c1", "o1", "r2", "r1", "c2"}, ids(out))
	})

	t.Run("folders are not reorder targets", func(t *testing.T) {
		_, err := favorite.Move(list, defaultView, favorite.Target{ID: "f1"}, favorite.MoveUp)
		assert.ErrorIs(t, err, favorite.ErrNotFound)
	})
}

func TestMove_MatchesByPathWithoutID(t *testing.T) {
	list := []favorite.Entry{
		{Kind: favorite.KindResource, FilePath: "a.txt", Group: "default"},
		{Kind: favorite.KindResource, FilePath: "b.txt", Group: "default"},
	}

	out, err := favorite.Move(list, defaultView, favorite.Target{FilePath: "b.txt"}, favorite.MoveUp)
	require.NoError(t, err)
	assert.Equal(t, "b.txt", out[0].FilePath)
	assert.Equal(t, "a.txt", out[1].FilePath)
}

func TestMove_Properties(t *testing.T) {
	list := []favorite.Entry{
		resource("a", "/a", ""),
		folder("f", "F", ""),
		resource("b", "/b", ""),
		resource("x", "/x", "f"),
		resource("c", "/c", ""),
		resource("d", "/d", ""),
	}

	scopeOrder := func(l []favorite.Entry) []string {
		var out []string
		for _, i := range favorite.Scope(l, "default", "") {
			if l[i].ID != "c" {
				out = append(out, l[i].ID)
			}
		}
		return out
	}

	for _, dir := range []favorite.Direction{favorite.MoveUp, favorite.MoveDown, favorite.MoveToTop, favorite.MoveToBottom} {
		t.Run(string(dir), func(t *testing.T) {
			out, err := favorite.Move(list, defaultView, favorite.Target{ID: "c"}, dir)
			require.NoError(t, err)

			before, after := ids(list), ids(out)
			sort.Strings(before)
			sort.Strings(after)
			assert.Equal(t, before, after, "same ids")

			assert.Equal(t, scopeOrder(list), scopeOrder(out), "other siblings keep their order")
			assert.Equal(t, []string{"f", "x"}, outsideScope(out), "entries outside the scope keep their order")
		})
	}

	t.Run("up then down restores the order", func(t *testing.T) {
		up, err := favorite.Move(list, defaultView, favorite.Target{ID: "c"}, favorite.MoveUp)
		require.NoError(t, err)
		back, err := favorite.Move(up, defaultView, favorite.Target{ID: "c"}, favorite.MoveDown)
		require.NoError(t, err)
		assert.Equal(t, list, back)
	})
}

func outsideScope(l []favorite.Entry) []string {
	in := make(map[int]bool)
	for _, i := range favorite.Scope(l, "default", "") {
		in[i] = true
	}
	var out []string
	for i, e := range l {
		if !in[i] {
			out = append(out, e.ID)
		}
	}
	return out
}

func TestParseDirection(t *testing.T) {
	d, err := favorite.ParseDirection("Top")
	require.NoError(t, err)
	assert.Equal(t, favorite.MoveToTop, d)

	_, err = favorite.ParseDirection("sideways")
	assert.Error(t, err)
}

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
	"fmt"
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultView = favorite.View{Group: favorite.DefaultGroup, Sort: favorite.SortManual}

type singleRoot string

func (r singleRoot) IsMultiRoot() bool      { return false }
func (r singleRoot) SingleRootPath() string { return string(r) }

func sequentialIDs(prefix string) favorite.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func folder(id, name, parent string) favorite.Entry {
	return favorite.Entry{ID: id, Kind: favorite.KindFolder, Name: name, Group: favorite.DefaultGroup, ParentID: parent}
}

func resource(id, path, parent string) favorite.Entry {
	return favorite.Entry{ID: id, Kind: favorite.KindResource, FilePath: path, Group: favorite.DefaultGroup, ParentID: parent}
}

func ids(list []favorite.Entry) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.ID
	}
	return out
}

func TestAddResource(t *testing.T) {
	t.Run("appends without touching the input", func(t *testing.T) {
		list := []favorite.Entry{resource("r1", "/a.txt", "")}
		out := favorite.AddResource(list, favorite.Entry{ID: "r2", FilePath: "/b.txt", Group: "default"})

		require.Len(t, out, 2)
		assert.Len(t, list, 1)
		assert.Equal(t, "r2", out[1].ID)
		assert.Equal(t, favorite.KindResource, out[1].Kind)
	})
}

func TestHasResource(t *testing.T) {
	ws := singleRoot("/work")
	list := []favorite.Entry{
		resource("r1", "src/main.go", ""),
		resource("r2", "/tmp/x.txt", "f1"),
		{ID: "r3", Kind: favorite.KindResource, FilePath: "/elsewhere.txt", Group: "other"},
	}

	assert.True(t, favorite.HasResource(list, ws, "default", "src/main.go", ""))
	assert.True(t, favorite.HasResource(list, ws, "default", "/work/src/main.go", ""), "resolved path matches")
	assert.False(t, favorite.HasResource(list, ws, "default", "src/main.go", "f1"), "different parent")
	assert.True(t, favorite.HasResource(list, ws, "default", "/tmp/x.txt", "f1"))
	assert.False(t, favorite.HasResource(list, ws, "default", "/elsewhere.txt", ""), "other group")
}

func TestAddFolder(t *testing.T) {
	t.Run("appends a folder with a fresh id", func(t *testing.T) {
		out, err := favorite.AddFolder(nil, defaultView, "Work", "", sequentialIDs("f"))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, favorite.Entry{ID: "f1", Kind: favorite.KindFolder, Group: "default", Name: "Work"}, out[0])
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		newID := sequentialIDs("f")
		list, err := favorite.AddFolder(nil, defaultView, "Work", "", newID)
		require.NoError(t, err)

		out, err := favorite.AddFolder(list, defaultView, "Work", "", newID)
		require.ErrorIs(t, err, favorite.ErrDuplicateName)
		assert.Equal(t, list, out)

		var nameErr *favorite.NameError
		require.ErrorAs(t, err, &nameErr)
		assert.Equal(t, "Work", nameErr.Name)
	})

	t.Run("uniqueness is checked across the whole group", func(t *testing.T) {
		list := []favorite.Entry{folder("f1", "Work", ""), folder("f2", "Notes", "f1")}

		_, err := favorite.AddFolder(list, defaultView, "Notes", "", sequentialIDs("x"))
		assert.ErrorIs(t, err, favorite.ErrDuplicateName)
	})

	t.Run("same name in another group is allowed", func(t *testing.T) {
		list := []favorite.Entry{folder("f1", "Work", "")}
		view := favorite.View{Group: "side"}

		out, err := favorite.AddFolder(list, view, "Work", "", sequentialIDs("x"))
		require.NoError(t, err)
		assert.Equal(t, "side", out[1].Group)
	})

	t.Run("empty name is a no-op", func(t *testing.T) {
		_, err := favorite.AddFolder(nil, defaultView, "", "", nil)
		assert.ErrorIs(t, err, favorite.ErrNoOp)
	})
}

func TestRenameFolder(t *testing.T) {
	list := []favorite.Entry{
		folder("f1", "Work", ""),
		resource("r1", "/a.txt", "f1"),
		folder("f2", "Home", ""),
	}

	t.Run("changes only the name", func(t *testing.T) {
		out, err := favorite.RenameFolder(list, defaultView, "f1", "Office")
		require.NoError(t, err)

		want := []favorite.Entry{folder("f1", "Office", ""), list[1], list[2]}
		assert.Equal(t, want, out)
		assert.Equal(t, "Work", list[0].Name, "input untouched")
	})

	tests := []struct {
		name    string
		id      string
		newName string
		wantErr error
	}{
		{"unknown id", "nope", "X", favorite.ErrNotFound},
		{"resource id", "r1", "X", favorite.ErrNotFound},
		{"same name", "f1", "Work", favorite.ErrNoOp},
		{"empty name", "f1", "", favorite.ErrNoOp},
		{"taken name", "f1", "Home", favorite.ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := favorite.RenameFolder(list, defaultView, tt.id, tt.newName)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, list, out)
		})
	}

	t.Run("folder of another group is not found", func(t *testing.T) {
		_, err := favorite.RenameFolder(list, favorite.View{Group: "side"}, "f1", "X")
		assert.ErrorIs(t, err, favorite.ErrNotFound)
	})
}

func TestDeleteResource(t *testing.T) {
	ws := singleRoot("/work")

	t.Run("matches by id", func(t *testing.T) {
		list := []favorite.Entry{resource("r1", "/a.txt", ""), resource("r2", "/a.txt", "")}
		out, err := favorite.DeleteResource(list, defaultView, ws, favorite.Target{ID: "r2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"r1"}, ids(out))
	})

	t.Run("matches path and parent when ids are absent", func(t *testing.T) {
		list := []favorite.Entry{
			{Kind: favorite.KindResource, FilePath: "a.txt", Group: "default"},
			{Kind: favorite.KindResource, FilePath: "a.txt", Group: "default", ParentID: "f1"},
		}
		out, err := favorite.DeleteResource(list, defaultView, ws, favorite.Target{FilePath: "/work/a.txt"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "f1", out[0].ParentID)
	})

	t.Run("uri targets match verbatim only", func(t *testing.T) {
		list := []favorite.Entry{
			{Kind: favorite.KindResource, FilePath: "https://example.com/x", Group: "default"},
		}
		_, err := favorite.DeleteResource(list, defaultView, ws, favorite.Target{FilePath: "https://EXAMPLE.com/x"})
		require.ErrorIs(t, err, favorite.ErrNotFound)

		out, err := favorite.DeleteResource(list, defaultView, ws, favorite.Target{FilePath: "https://example.com/x"})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("never removes folders or other groups", func(t *testing.T) {
		list := []favorite.Entry{
			folder("f1", "Work", ""),
			{ID: "r9", Kind: favorite.KindResource, FilePath: "/a.txt", Group: "side"},
		}
		out, err := favorite.DeleteResource(list, defaultView, ws, favorite.Target{ID: "f1"})
		require.ErrorIs(t, err, favorite.ErrNotFound)
		assert.Equal(t, list, out)

		_, err = favorite.DeleteResource(list, defaultView, ws, favorite.Target{ID: "r9"})
		assert.ErrorIs(t, err, favorite.ErrNotFound)
	})
}

func TestDeleteFolder(t *testing.T) {
	t.Run("removes the folder and its direct children", func(t *testing.T) {
		list := []favorite.Entry{
			folder("f1", "Work", ""),
			resource("r1", "/a.txt", "f1"),
			resource("r2", "/b.txt", ""),
		}
		out, err := favorite.DeleteFolder(list, defaultView, "f1")
		require.NoError(t, err)
		assert.Equal(t, []favorite.Entry{list[2]}, out)
	})

	t.Run("cascades through nested folders", func(t *testing.T) {
		list := []favorite.Entry{
			folder("f1", "A", ""),
			folder("f2", "B", "f1"),
			folder("f3", "C", "f2"),
			resource("r1", "/1", "f3"),
			resource("r2", "/2", "f2"),
			folder("f4", "D", ""),
			resource("r3", "/3", "f4"),
			resource("r4", "/4", ""),
		}
		out, err := favorite.DeleteFolder(list, defaultView, "f1")
		require.NoError(t, err)
		assert.Equal(t, []string{"f4", "r3", "r4"}, ids(out))
	})

	t.Run("leaves other groups alone", func(t *testing.T) {
		list := []favorite.Entry{
			folder("f1", "A", ""),
			{ID: "x1", Kind: favorite.KindResource, FilePath: "/x", Group: "side", ParentID: "f1"},
		}
		out, err := favorite.DeleteFolder(list, defaultView, "f1")
		require.NoError(t, err)
		assert.Equal(t, []string{"x1"}, ids(out))
	})

	t.Run("terminates on a parent cycle", func(t *testing.T) {
		list := []favorite.Entry{
			folder("f1", "A", "f2"),
			folder("f2", "B", "f1"),
			resource("r1", "/1", "f2"),
			resource("r2", "/2", ""),
		}
		out, err := favorite.DeleteFolder(list, defaultView, "f1")
		require.NoError(t, err)
		assert.Equal(t, []string{"r2"}, ids(out))
	})

	t.Run("unknown folder", func(t *testing.T) {
		list := []favorite.Entry{resource("r1", "/1", "")}
		_, err := favorite.DeleteFolder(list, defaultView, "r1")
		assert.ErrorIs(t, err, favorite.ErrNotFound)
	})
}

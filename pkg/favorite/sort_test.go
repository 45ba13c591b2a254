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
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func folderItem(name string) favorite.Item {
	return favorite.Item{
		Entry: favorite.Entry{Kind: favorite.KindFolder, Name: name},
		Stat:  favorite.StatDirectory,
		Label: name,
	}
}

func fileItem(label string, stat favorite.Stat) favorite.Item {
	return favorite.Item{
		Entry: favorite.Entry{Kind: favorite.KindResource, FilePath: "/" + label},
		Stat:  stat,
		Label: label,
	}
}

func labels(items []favorite.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestSortItems(t *testing.T) {
	items := []favorite.Item{
		folderItem("B"),
		fileItem("a.txt", favorite.StatFile),
		folderItem("A"),
	}

	t.Run("ascending puts folders first", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B", "a.txt"}, labels(favorite.SortItems(items, favorite.SortAsc)))
	})

	t.Run("descending still puts folders first", func(t *testing.T) {
		assert.Equal(t, []string{"B", "A", "a.txt"}, labels(favorite.SortItems(items, favorite.SortDesc)))
	})

	t.Run("manual keeps input order", func(t *testing.T) {
		assert.Equal(t, []string{"B", "a.txt", "A"}, labels(favorite.SortItems(items, favorite.SortManual)))
	})

	t.Run("directories sort with folders", func(t *testing.T) {
		mixed := []favorite.Item{
			fileItem("a.txt", favorite.StatFile),
			fileItem("zdir", favorite.StatDirectory),
			folderItem("M"),
		}
		assert.Equal(t, []string{"M", "zdir", "a.txt"}, labels(favorite.SortItems(mixed, favorite.SortAsc)))
	})

	t.Run("ties keep input order in both directions", func(t *testing.T) {
		first := fileItem("same", favorite.StatFile)
		first.ID = "first"
		second := fileItem("same", favorite.StatFile)
		second.ID = "second"

		for _, mode := range []favorite.SortMode{favorite.SortAsc, favorite.SortDesc} {
			out := favorite.SortItems([]favorite.Item{first, second}, mode)
			assert.Equal(t, "first", out[0].ID, mode)
			assert.Equal(t, "second", out[1].ID, mode)
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		_ = favorite.SortItems(items, favorite.SortAsc)
		assert.Equal(t, []string{"B", "a.txt", "A"}, labels(items))
	})
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in   string
		want favorite.SortMode
	}{
		{"manual", favorite.SortManual},
		{"MANUAL", favorite.SortManual},
		{"", favorite.SortManual},
		{"asc", favorite.SortAsc},
		{"ascending", favorite.SortAsc},
		{"DESC", favorite.SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := favorite.ParseSortMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := favorite.ParseSortMode("random")
	assert.Error(t, err)
}

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

func TestImportRecords(t *testing.T) {
	records := []favorite.ImportRecord{
		{Title: "Go", Location: "https://go.dev", Folders: []string{"Bar", "Dev"}},
		{Title: "Docs", Location: "https://pkg.go.dev", Folders: []string{"Bar", "Dev"}},
		{Title: "News", Location: "https://news.example", Folders: []string{"Bar"}},
		{Title: "Script", Location: "javascript:void(0)"},
	}

	out, stats := favorite.ImportRecords(nil, defaultView, records, sequentialIDs("i"))

	assert.Equal(t, favorite.ImportStats{Added: 3, Skipped: 1, Folders: 2}, stats)
	require.Len(t, out, 5)

	bar, ok := favorite.FolderByName(out, "default", "Bar")
	require.True(t, ok)
	assert.Empty(t, bar.ParentID)

	dev, ok := favorite.FolderByName(out, "default", "Dev")
	require.True(t, ok)
	assert.Equal(t, bar.ID, dev.ParentID)

	for _, e := range out {
		if e.FilePath == "https://news.example" {
			assert.Equal(t, bar.ID, e.ParentID)
			assert.Equal(t, "News", e.Title)
		}
	}

	t.Run("importing again adds nothing", func(t *testing.T) {
		again, stats := favorite.ImportRecords(out, defaultView, records, sequentialIDs("j"))
		assert.Equal(t, out, again)
		assert.Equal(t, favorite.ImportStats{Skipped: 4}, stats)
	})
}

func TestImportRecords_NameTakenElsewhere(t *testing.T) {
	list := []favorite.Entry{
		folder("f1", "Work", ""),
		folder("f2", "Dev", "f1"),
	}
	records := []favorite.ImportRecord{
		{Location: "https://a.example", Folders: []string{"Dev"}},
	}

	out, stats := favorite.ImportRecords(list, defaultView, records, sequentialIDs("i"))
	assert.Equal(t, 1, stats.Folders)

	created, ok := favorite.FolderByName(out, "default", "Dev (2)")
	require.True(t, ok)
	assert.Empty(t, created.ParentID)

	again, stats := favorite.ImportRecords(out, defaultView, records, sequentialIDs("j"))
	assert.Equal(t, out, again, "second run reuses the suffixed folder")
	assert.Zero(t, stats.Folders)
}

func TestImportRecords_OtherGroup(t *testing.T) {
	view := favorite.View{Group: "imports"}
	out, _ := favorite.ImportRecords(nil, view, []favorite.ImportRecord{
		{Location: "https://a.example", Folders: []string{"Bar"}},
	}, nil)

	require.Len(t, out, 2)
	for _, e := range out {
		assert.Equal(t, "imports", e.Group)
		assert.NotEmpty(t, e.ID)
	}
}

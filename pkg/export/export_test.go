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


package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cloudygreybeard/favorites/pkg/export"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
)

func sampleDoc() *export.Document {
	folder := favorite.Item{
		Entry: favorite.Entry{ID: "f1", Kind: favorite.KindFolder, Name: "Docs"},
		Stat:  favorite.StatDirectory, Label: "Docs", Expandable: true, Context: "favorite.folder",
	}
	file := favorite.Item{
		Entry: favorite.Entry{ID: "r1", FilePath: "README.md", ParentID: "f1"},
		Stat:  favorite.StatFile, Location: "/src/README.md", Label: "README.md", Context: "resource",
	}
	uri := favorite.Item{
		Entry: favorite.Entry{ID: "r2", FilePath: "https://go.dev"},
		Stat:  favorite.StatFile, Location: "https://go.dev", Label: "Go", Context: "uri.resource",
	}
	dir := favorite.Item{
		Entry: favorite.Entry{ID: "r3", FilePath: "cmd"},
		Stat:  favorite.StatDirectory, Location: "/src/cmd", Label: "cmd", Expandable: true, Context: "resource.dir",
	}
	child := favorite.Item{
		Entry: favorite.Entry{FilePath: "/src/cmd/main.go"},
		Stat:  favorite.StatFile, Location: "/src/cmd/main.go", Label: "main.go", Transient: true, Context: "resourceChild",
	}

	return &export.Document{
		Group:     "default",
		Sort:      favorite.SortManual,
		Generated: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Nodes: []*favorite.Node{
			{Item: folder, Children: []*favorite.Node{{Item: file}}},
			{Item: uri},
			{Item: dir, Children: []*favorite.Node{{Item: child}}},
		},
	}
}

func TestKindAndHref(t *testing.T) {
	doc := sampleDoc()
	folder, uri, dir := doc.Nodes[0].Item, doc.Nodes[1].Item, doc.Nodes[2].Item
	file := doc.Nodes[0].Children[0].Item

	assert.Equal(t, "folder", export.Kind(folder))
	assert.Equal(t, "file", export.Kind(file))
	assert.Equal(t, "uri", export.Kind(uri))
	assert.Equal(t, "directory", export.Kind(dir))

	assert.Empty(t, export.Href(folder))
	assert.Equal(t, "https://go.dev", export.Href(uri))
	assert.Equal(t, "file:///src/README.md", export.Href(file))
}

func TestDocument(t *testing.T) {
	doc := sampleDoc()
	assert.Equal(t, 5, doc.Count())
	assert.Equal(t, "Favorites: default", doc.TitleOrDefault())

	meta := export.MetadataOf(doc)
	assert.Equal(t, "2026-01-02T03:04:05Z", meta.Generated)
	assert.Equal(t, "manual", meta.Sort)
	assert.Equal(t, 5, meta.Total)
}

func TestEntries(t *testing.T) {
	entries := export.Entries(sampleDoc().Nodes, export.Options{IncludeIDs: true})

	assert.Len(t, entries, 3)
	assert.Equal(t, "f1", entries[0].ID)
	assert.Equal(t, "folder", entries[0].Kind)
	assert.Equal(t, "README.md", entries[0].Children[0].Label)
	assert.True(t, entries[2].Children[0].Transient)

	entries = export.Entries(sampleDoc().Nodes, export.Options{})
	assert.Empty(t, entries[0].ID)
}

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


package importer_test

import (
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/importer"
	"github.com/stretchr/testify/assert"
)

func records() []importer.Record {
	return []importer.Record{
		{Title: "Go", Location: "https://go.dev", Folders: []string{"Bookmarks Bar", "Dev"}},
		{Title: "Bookmarklet", Location: "javascript:alert(1)", Folders: []string{"Bookmarks Bar"}},
		{Title: "Old", Location: "https://old.example.com", Folders: []string{"Trash"}},
		{Title: "Tracker", Location: "https://ads.example.com/x", Folders: []string{"Other"}},
		{Title: "FTP", Location: "ftp://files.example.com", Folders: []string{"Other"}},
	}
}

func titles(rs []importer.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		opts     importer.FilterOptions
		want     []string
		excluded int
	}{
		{
			name: "no options",
			want: []string{"Go", "Bookmarklet", "Old", "Tracker", "FTP"},
		},
		{
			name:     "exclude protocol",
			opts:     importer.FilterOptions{ExcludeProtocols: []string{"JavaScript"}},
			want:     []string{"Go", "Old", "Tracker", "FTP"},
			excluded: 1,
		},
		{
			name:     "exclude folder",
			opts:     importer.FilterOptions{ExcludeFolders: []string{"Trash"}},
			want:     []string{"Go", "Bookmarklet", "Tracker", "FTP"},
			excluded: 1,
		},
		{
			name:     "include folder",
			opts:     importer.FilterOptions{IncludeFolders: []string{"Dev"}},
			want:     []string{"Go"},
			excluded: 4,
		},
		{
			name:     "url pattern",
			opts:     importer.FilterOptions{ExcludeURLPatterns: []string{`^https://ads\.`}},
			want:     []string{"Go", "Bookmarklet", "Old", "FTP"},
			excluded: 1,
		},
		{
			name:     "max length",
			opts:     importer.FilterOptions{MaxURLLength: 20},
			want:     []string{"Go", "Bookmarklet"},
			excluded: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := importer.Filter(records(), tt.opts)
			assert.Equal(t, tt.want, titles(got.Records))
			assert.Equal(t, tt.excluded, got.Excluded)
		})
	}
}

func TestFilter_Warnings(t *testing.T) {
	got := importer.Filter(records(), importer.FilterOptions{
		WarnProtocols:      []string{"ftp"},
		ExcludeURLPatterns: []string{"("},
	})

	assert.Len(t, got.Records, 5)
	assert.Len(t, got.Warnings, 2)
	assert.Contains(t, got.Warnings[0], "ignoring URL pattern")
	assert.Contains(t, got.Warnings[1], "protocol 'ftp'")
}

func TestDeduplicate(t *testing.T) {
	in := []importer.Record{
		{Title: "a", Location: "https://a.example", Folders: []string{"x"}},
		{Title: "b", Location: "https://a.example", Folders: []string{"x"}},
		{Title: "c", Location: "https://a.example", Folders: []string{"y"}},
	}

	assert.Equal(t, []string{"a", "c"}, titles(importer.Deduplicate(in)))
}

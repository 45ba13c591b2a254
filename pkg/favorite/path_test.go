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
	"path/filepath"
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type multiRoot struct{}

func (multiRoot) IsMultiRoot() bool      { return true }
func (multiRoot) SingleRootPath() string { return "" }

func TestIsURI(t *testing.T) {
	assert.True(t, favorite.IsURI("https://example.com"))
	assert.True(t, favorite.IsURI("file:///tmp/x"))
	assert.True(t, favorite.IsURI("vscode-remote://ssh/home"))
	assert.False(t, favorite.IsURI("/tmp/x"))
	assert.False(t, favorite.IsURI("src/main.go"))
	assert.False(t, favorite.IsURI("mailto:someone@example.com"))
}

func TestStoredLocation(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	tests := []struct {
		name string
		ws   favorite.Workspace
		in   string
		want string
	}{
		{"inside single root", singleRoot(root), filepath.Join(root, "src", "main.go"), filepath.Join("src", "main.go")},
		{"the root itself", singleRoot(root), root, "."},
		{"outside single root", singleRoot(root), filepath.Join(outside, "x.txt"), filepath.Join(outside, "x.txt")},
		{"multi root stays absolute", multiRoot{}, filepath.Join(root, "a.txt"), filepath.Join(root, "a.txt")},
		{"file uri becomes a path", singleRoot(root), "file://" + filepath.ToSlash(filepath.Join(root, "a.txt")), "a.txt"},
		{"other uris are kept", singleRoot(root), "https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"no workspace", nil, filepath.Join(outside, "y"), filepath.Join(outside, "y")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := favorite.StoredLocation(tt.ws, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", "src", "a.go"), favorite.Resolve(singleRoot("/work"), filepath.Join("src", "a.go")))
	assert.Equal(t, "/abs/a.go", favorite.Resolve(singleRoot("/work"), "/abs/a.go"))
	assert.Equal(t, "https://example.com", favorite.Resolve(singleRoot("/work"), "https://example.com"))
}

func TestJoinLocation(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "a.go"), favorite.JoinLocation("src", "a.go"))
	assert.Equal(t, "ssh://host/home/me/a.go", favorite.JoinLocation("ssh://host/home/me", "a.go"))
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/tmp/a.txt":                    "a.txt",
		"src/main.go":                   "main.go",
		"https://example.com/docs/":     "docs",
		"https://example.com":           "example.com",
		"https://example.com/a/b?x=1#y": "b",
	}
	for in, want := range tests {
		assert.Equal(t, want, favorite.BaseName(in), in)
	}
}

func TestNewID(t *testing.T) {
	a, b := favorite.NewID(), favorite.NewID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

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


package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudygreybeard/favorites/pkg/probe"
	"github.com/cloudygreybeard/favorites/pkg/service"
	"github.com/cloudygreybeard/favorites/pkg/store"
	"github.com/cloudygreybeard/favorites/pkg/workspace"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name), 0o644))
	}

	st, err := store.OpenFile(filepath.Join(t.TempDir(), "favorites.yaml"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	m := service.New(service.Options{
		Store:     st,
		Workspace: workspace.Roots{root},
		Prober:    probe.FS{},
		Lister:    probe.FS{},
	})
	return NewServer(m, "test"), root
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()

	res, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestTools_AddAndList(t *testing.T) {
	s, _ := newTestServer(t)

	out, isErr := call(t, s.handleList, nil)
	assert.False(t, isErr)
	assert.Contains(t, out, "No favorites")

	_, isErr = call(t, s.handleCreateFolder, map[string]any{"name": "Docs"})
	assert.False(t, isErr)

	out, isErr = call(t, s.handleAdd, map[string]any{"location": "a.txt", "folder": "Docs"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Added a.txt")

	_, isErr = call(t, s.handleAdd, map[string]any{"location": "https://go.dev", "title": "Go"})
	assert.False(t, isErr)

	out, _ = call(t, s.handleList, map[string]any{"depth": 0})
	assert.Contains(t, out, "Docs/")
	assert.Contains(t, out, "  a.txt")
	assert.Contains(t, out, "Go  https://go.dev")
}

func TestTools_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	_, isErr := call(t, s.handleAdd, map[string]any{})
	assert.True(t, isErr)

	_, isErr = call(t, s.handleCreateFolder, map[string]any{"name": "Docs"})
	require.False(t, isErr)
	out, isErr := call(t, s.handleCreateFolder, map[string]any{"name": "Docs"})
	assert.True(t, isErr)
	assert.Contains(t, out, "already exists")

	_, isErr = call(t, s.handleDeleteFolder, map[string]any{"folder": "Nope"})
	assert.True(t, isErr)

	_, isErr = call(t, s.handleMove, map[string]any{"location": "a.txt", "direction": "sideways"})
	assert.True(t, isErr)
}

func TestTools_NoOp(t *testing.T) {
	s, _ := newTestServer(t)

	_, isErr := call(t, s.handleAdd, map[string]any{"location": "a.txt"})
	require.False(t, isErr)

	out, isErr := call(t, s.handleAdd, map[string]any{"location": "a.txt"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Nothing to do")

	out, isErr = call(t, s.handleMove, map[string]any{"location": "a.txt", "direction": "up"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Nothing to do")
}

func TestTools_MoveSortGroup(t *testing.T) {
	s, _ := newTestServer(t)

	call(t, s.handleAdd, map[string]any{"location": "a.txt"})
	call(t, s.handleAdd, map[string]any{"location": "b.txt"})

	out, isErr := call(t, s.handleSort, map[string]any{"order": "desc"})
	assert.False(t, isErr)
	assert.Contains(t, out, "desc")

	out, isErr = call(t, s.handleMove, map[string]any{"location": "b.txt", "direction": "top"})
	assert.False(t, isErr)
	assert.Equal(t, "Moved b.txt top.", out)

	out, _ = call(t, s.handleList, nil)
	assert.Contains(t, out, "sort: manual")

	out, isErr = call(t, s.handleGroup, map[string]any{"group": "work"})
	assert.False(t, isErr)
	assert.Contains(t, out, "work")

	out, _ = call(t, s.handleList, nil)
	assert.Contains(t, out, "No favorites in group work")

	_, isErr = call(t, s.handleDeleteFavorite, map[string]any{"location": "a.txt"})
	assert.True(t, isErr, "a.txt lives in the default group")
}

func TestResource_Tree(t *testing.T) {
	s, _ := newTestServer(t)
	call(t, s.handleAdd, map[string]any{"location": "a.txt"})

	contents, err := s.handleTree(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: TreeURI},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.Contains(t, text.Text, `"label": "a.txt"`)
	assert.Contains(t, text.Text, `"group": "default"`)
}

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

package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []favorite.Entry{
	{ID: "f1", Kind: favorite.KindFolder, Group: "default", Name: "Work"},
	{ID: "r1", Kind: favorite.KindResource, Group: "default", ParentID: "f1", FilePath: "src/main.go"},
	{ID: "u1", Kind: favorite.KindResource, Group: "web", FilePath: "https://go.dev", Title: "Go"},
	{Group: "default", FilePath: "/legacy/no-id.txt"},
}

func backends(t *testing.T) map[string]func() store.Store {
	dir := t.TempDir()
	return map[string]func() store.Store{
		store.BackendFile: func() store.Store {
			s, err := store.Open(store.Config{Backend: store.BackendFile, Path: filepath.Join(dir, "favorites.yaml")})
			require.NoError(t, err)
			return s
		},
		store.BackendSQLite: func() store.Store {
			s, err := store.Open(store.Config{Backend: store.BackendSQLite, Path: filepath.Join(dir, "favorites.db")})
			require.NoError(t, err)
			return s
		},
		store.BackendBadger: func() store.Store {
			s, err := store.Open(store.Config{Backend: store.BackendBadger, Path: filepath.Join(dir, "badger")})
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open()

			list, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, list, "new store is empty")

			require.NoError(t, s.Save(ctx, sample))
			require.NoError(t, s.SetScalar(ctx, store.KeyCurrentGroup, "web"))
			require.NoError(t, s.SetScalar(ctx, store.KeySortOrder, "ASC"))
			require.NoError(t, s.Close())

			s = open()
			defer s.Close()

			list, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, sample, list)

			group, err := s.Scalar(ctx, store.KeyCurrentGroup)
			require.NoError(t, err)
			assert.Equal(t, "web", group)

			unset, err := s.Scalar(ctx, store.KeyGroups)
			require.NoError(t, err)
			assert.Empty(t, unset)

			require.NoError(t, s.Save(ctx, sample[:1]))
			list, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, sample[:1], list, "save replaces the whole list")

			require.NoError(t, s.SetScalar(ctx, store.KeySortOrder, ""))
			order, err := s.Scalar(ctx, store.KeySortOrder)
			require.NoError(t, err)
			assert.Empty(t, order)
		})
	}
}

func TestFile_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.yaml")
	s, err := store.OpenFile(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sample[:2]))
	require.NoError(t, s.SetScalar(ctx, store.KeyCurrentGroup, "default"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resources:")
	assert.Contains(t, string(data), "parentId: f1")
	assert.Contains(t, string(data), "type: folder")
	assert.Contains(t, string(data), "currentGroup: default")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resources: [unclosed"), 0o644))

	s, err := store.OpenFile(path)
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Save(context.Background(), sample), "a save does not clobber an unreadable file")
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := store.Open(store.Config{Backend: "etcd"})
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	s, err := store.OpenFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := store.Watch(ctx, path, 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "unrelated.txt"), []byte("x"), 0o644))
	require.NoError(t, s.Save(ctx, sample))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	for range changes {
	}
}

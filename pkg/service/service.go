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

// Package service runs favorites commands against a store.
//
// Every command reads the persisted list, applies a pure mutator from
// package favorite and writes the result back. A Manager runs one command
// at a time, so two commands in the same process never interleave their
// read and write.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/logging"
	"github.com/cloudygreybeard/favorites/pkg/store"
)

// ErrPersistence wraps failures of the store. The mutation was computed
// but may not have been written.
var ErrPersistence = errors.New("persistence failure")

// Options configures a Manager.
type Options struct {
	Store     store.Store
	Workspace favorite.Workspace
	Prober    favorite.Prober
	Lister    favorite.Lister

	// Concurrency limits parallel probes; zero keeps the default.
	Concurrency int

	// Fallback is used for the group and sort order until they are stored.
	Fallback favorite.View

	// NewID generates entry IDs; nil means favorite.NewID.
	NewID favorite.IDFunc
}

// Manager is the single command path over the persisted favorites.
type Manager struct {
	mu       sync.Mutex
	store    store.Store
	ws       favorite.Workspace
	mat      *favorite.Materializer
	fallback favorite.View
	newID    favorite.IDFunc
	log      *logging.Logger
}

// New creates a Manager.
func New(opts Options) *Manager {
	mat := favorite.NewMaterializer(opts.Prober, opts.Lister, opts.Workspace)
	if opts.Concurrency != 0 {
		mat.SetConcurrency(opts.Concurrency)
	}

	fallback := opts.Fallback
	if fallback.Group == "" {
		fallback.Group = favorite.DefaultGroup
	}
	if fallback.Sort == "" {
		fallback.Sort = favorite.SortManual
	}

	newID := opts.NewID
	if newID == nil {
		newID = favorite.NewID
	}

	return &Manager{
		store:    opts.Store,
		ws:       opts.Workspace,
		mat:      mat,
		fallback: fallback,
		newID:    newID,
		log:      logging.Get("service"),
	}
}

// Store returns the underlying store.
func (m *Manager) Store() store.Store {
	return m.store
}

// View returns the active group and sort order.
func (m *Manager) View(ctx context.Context) (favorite.View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view(ctx)
}

// List returns the whole persisted list.
func (m *Manager) List(ctx context.Context) ([]favorite.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

// AddResource favorites location in the active group, optionally inside
// folder (an ID or a folder name). Adding a location already present under
// the same parent is a no-op.
func (m *Manager) AddResource(ctx context.Context, location, folder, title string) (favorite.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return favorite.Entry{}, err
	}

	stored, err := favorite.StoredLocation(m.ws, location)
	if err != nil {
		return favorite.Entry{}, fmt.Errorf("normalizing %s: %w", location, err)
	}

	parent, err := m.folderID(list, view, folder)
	if err != nil {
		return favorite.Entry{}, err
	}

	group := view.GroupOrDefault()
	if favorite.HasResource(list, m.ws, group, stored, parent) {
		return favorite.Entry{}, fmt.Errorf("%s is already a favorite: %w", stored, favorite.ErrNoOp)
	}

	if err := m.registerGroups(ctx, favorite.DefaultGroup, group); err != nil {
		return favorite.Entry{}, err
	}

	e := favorite.Entry{
		ID:       m.newID(),
		Kind:     favorite.KindResource,
		Group:    group,
		ParentID: parent,
		FilePath: stored,
		Title:    title,
	}
	if err := m.save(ctx, favorite.AddResource(list, e)); err != nil {
		return e, err
	}
	m.log.Info("added favorite", "path", stored, "group", group)
	return e, nil
}

// AddFolder creates a folder in the active group, optionally inside parent
// (an ID or a folder name).
func (m *Manager) AddFolder(ctx context.Context, name, parent string) (favorite.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return favorite.Entry{}, err
	}

	parentID, err := m.folderID(list, view, parent)
	if err != nil {
		return favorite.Entry{}, err
	}

	out, err := favorite.AddFolder(list, view, name, parentID, m.newID)
	if err != nil {
		return favorite.Entry{}, err
	}

	created := out[len(out)-1]
	if err := m.save(ctx, out); err != nil {
		return created, err
	}
	m.log.Info("created folder", "name", name, "group", created.Group)
	return created, nil
}

// RenameFolder renames folder (an ID or a folder name).
func (m *Manager) RenameFolder(ctx context.Context, folder, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return err
	}

	f, err := m.resolveFolder(list, view, folder)
	if err != nil {
		return err
	}

	out, err := favorite.RenameFolder(list, view, f.ID, newName)
	if err != nil {
		return err
	}
	return m.save(ctx, out)
}

// DeleteResource removes the favorite ref refers to. ref is an entry ID or
// a location; a location is matched among the children of folder.
func (m *Manager) DeleteResource(ctx context.Context, ref, folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return err
	}

	target, err := m.target(list, view, ref, folder)
	if err != nil {
		return err
	}

	out, err := favorite.DeleteResource(list, view, m.ws, target)
	if err != nil {
		return err
	}
	return m.save(ctx, out)
}

// DeleteFolder removes folder (an ID or a folder name) and everything in it.
func (m *Manager) DeleteFolder(ctx context.Context, folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return err
	}

	f, err := m.resolveFolder(list, view, folder)
	if err != nil {
		return err
	}

	out, err := favorite.DeleteFolder(list, view, f.ID)
	if err != nil {
		return err
	}
	if err := m.save(ctx, out); err != nil {
		return err
	}
	m.log.Info("deleted folder", "name", f.Name, "removed", len(list)-len(out))
	return nil
}

// Move reorders the favorite ref refers to within its siblings. A
// successful move switches the sort order to manual before the new order
// is written.
func (m *Manager) Move(ctx context.Context, ref, folder string, dir favorite.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return err
	}

	target, err := m.target(list, view, ref, folder)
	if err != nil {
		return err
	}

	out, err := favorite.Move(list, view, target, dir)
	if err != nil {
		return err
	}

	if view.Sort != favorite.SortManual {
		if err := m.setScalar(ctx, store.KeySortOrder, string(favorite.SortManual)); err != nil {
			return err
		}
	}
	return m.save(ctx, out)
}

// SetSort stores the sort order of the view.
func (m *Manager) SetSort(ctx context.Context, mode favorite.SortMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, err := m.view(ctx)
	if err != nil {
		return err
	}
	if view.Sort == mode {
		return fmt.Errorf("sort order is already %s: %w", mode, favorite.ErrNoOp)
	}
	return m.setScalar(ctx, store.KeySortOrder, string(mode))
}

// ResolveFolder finds a folder of the active group by ID or by name.
func (m *Manager) ResolveFolder(ctx context.Context, ref string) (favorite.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return favorite.Entry{}, err
	}
	return m.resolveFolder(list, view, ref)
}

// Hierarchy materializes the active group.
func (m *Manager) Hierarchy(ctx context.Context) (*favorite.Hierarchy, error) {
	m.mu.Lock()
	view, list, err := m.state(ctx)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	h := m.mat.Materialize(ctx, list, view)
	if h.ProbeFailures > 0 {
		m.log.Debug("probes failed", "count", h.ProbeFailures, "group", view.GroupOrDefault())
	}
	if h.Promoted > 0 {
		m.log.Warn("folder parent cycle", "promoted", h.Promoted, "group", view.GroupOrDefault())
	}
	return h, nil
}

// Tree returns the fully expanded active group. Directory favorites are
// listed up to depth levels deep.
func (m *Manager) Tree(ctx context.Context, depth int) ([]*favorite.Node, favorite.View, error) {
	h, err := m.Hierarchy(ctx)
	if err != nil {
		return nil, favorite.View{}, err
	}
	return h.Expand(ctx, depth), h.View(), nil
}

// Import adds records to group, or to the active group when group is empty.
func (m *Manager) Import(ctx context.Context, records []favorite.ImportRecord, group string) (favorite.ImportStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return favorite.ImportStats{}, err
	}
	if group != "" {
		view.Group = group
	}

	out, stats := favorite.ImportRecords(list, view, records, m.newID)
	if stats.Added == 0 && stats.Folders == 0 {
		return stats, nil
	}

	if err := m.registerGroups(ctx, favorite.DefaultGroup, view.GroupOrDefault()); err != nil {
		return stats, err
	}
	if err := m.save(ctx, out); err != nil {
		return stats, err
	}
	m.log.Info("imported favorites", "added", stats.Added, "folders", stats.Folders, "skipped", stats.Skipped, "group", view.GroupOrDefault())
	return stats, nil
}

// state loads the view and the list. Callers hold m.mu.
func (m *Manager) state(ctx context.Context) (favorite.View, []favorite.Entry, error) {
	view, err := m.view(ctx)
	if err != nil {
		return view, nil, err
	}
	list, err := m.load(ctx)
	return view, list, err
}

func (m *Manager) view(ctx context.Context) (favorite.View, error) {
	view := m.fallback

	group, err := m.scalar(ctx, store.KeyCurrentGroup)
	if err != nil {
		return view, err
	}
	if group != "" {
		view.Group = group
	}

	order, err := m.scalar(ctx, store.KeySortOrder)
	if err != nil {
		return view, err
	}
	if order != "" {
		mode, err := favorite.ParseSortMode(order)
		if err != nil {
			m.log.Warn("ignoring stored sort order", "value", order)
		} else {
			view.Sort = mode
		}
	}
	return view, nil
}

func (m *Manager) load(ctx context.Context) ([]favorite.Entry, error) {
	list, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn("loading favorites failed", "path", m.store.Path(), "err", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return list, nil
}

func (m *Manager) save(ctx context.Context, list []favorite.Entry) error {
	if err := m.store.Save(ctx, list); err != nil {
		m.log.Warn("saving favorites failed", "path", m.store.Path(), "err", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (m *Manager) scalar(ctx context.Context, key string) (string, error) {
	v, err := m.store.Scalar(ctx, key)
	if err != nil {
		m.log.Warn("reading setting failed", "key", key, "err", err)
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return v, nil
}

func (m *Manager) setScalar(ctx context.Context, key, value string) error {
	if err := m.store.SetScalar(ctx, key, value); err != nil {
		m.log.Warn("writing setting failed", "key", key, "err", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// folderID resolves an optional folder reference. Empty means the root.
func (m *Manager) folderID(list []favorite.Entry, view favorite.View, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	f, err := m.resolveFolder(list, view, ref)
	if err != nil {
		return "", err
	}
	return f.ID, nil
}

func (m *Manager) resolveFolder(list []favorite.Entry, view favorite.View, ref string) (favorite.Entry, error) {
	group := view.GroupOrDefault()
	if f, ok := favorite.FindFolder(list, group, ref); ok {
		return f, nil
	}
	if f, ok := favorite.FolderByName(list, group, ref); ok {
		return f, nil
	}
	return favorite.Entry{}, fmt.Errorf("folder %q in group %s: %w", ref, group, favorite.ErrNotFound)
}

// target turns a user reference into a mutator target. An ID wins over a
// location; a location is normalized and matched under folder.
func (m *Manager) target(list []favorite.Entry, view favorite.View, ref, folder string) (favorite.Target, error) {
	group := view.GroupOrDefault()
	for _, e := range list {
		if !e.IsFolder() && e.Group == group && e.ID != "" && e.ID == ref {
			return favorite.TargetOf(e), nil
		}
	}

	parent, err := m.folderID(list, view, folder)
	if err != nil {
		return favorite.Target{}, err
	}

	stored, err := favorite.StoredLocation(m.ws, ref)
	if err != nil {
		return favorite.Target{}, fmt.Errorf("normalizing %s: %w", ref, err)
	}
	resolved := favorite.Resolve(m.ws, stored)

	for _, e := range list {
		if e.IsFolder() || e.Group != group || e.ParentID != parent {
			continue
		}
		if e.FilePath == stored || favorite.Resolve(m.ws, e.FilePath) == resolved {
			return favorite.TargetOf(e), nil
		}
	}
	return favorite.Target{FilePath: resolved, ParentID: parent}, nil
}

func decodeGroups(raw string) []string {
	if raw == "" {
		return nil
	}
	var groups []string
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil
	}
	return groups
}

func encodeGroups(groups []string) string {
	data, _ := json.Marshal(groups)
	return string(data)
}

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

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/store"
)

// GroupInfo describes a group for listings.
type GroupInfo struct {
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Entries int    `json:"entries"`
}

// ListGroups returns the registered groups, groups that only appear in
// entries, and the default group. The default group comes first.
func (m *Manager) ListGroups(ctx context.Context) ([]GroupInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view, list, err := m.state(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := m.groups(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	names := []string{favorite.DefaultGroup}
	add := func(name string) {
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	for _, g := range registry {
		add(g)
	}
	for _, e := range list {
		add(e.Group)
		counts[e.Group]++
	}
	add(view.GroupOrDefault())

	out := make([]GroupInfo, len(names))
	for i, name := range names {
		out[i] = GroupInfo{
			Name:    name,
			Active:  name == view.GroupOrDefault(),
			Entries: counts[name],
		}
	}
	return out, nil
}

// UseGroup makes name the active group, registering it when new.
func (m *Manager) UseGroup(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty group name: %w", favorite.ErrNoOp)
	}

	view, err := m.view(ctx)
	if err != nil {
		return err
	}
	if err := m.registerGroups(ctx, favorite.DefaultGroup, name); err != nil {
		return err
	}
	if view.GroupOrDefault() == name {
		return fmt.Errorf("group %s is already active: %w", name, favorite.ErrNoOp)
	}
	return m.setScalar(ctx, store.KeyCurrentGroup, name)
}

// CreateGroup registers an empty group without switching to it.
func (m *Manager) CreateGroup(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty group name: %w", favorite.ErrNoOp)
	}

	registry, err := m.groups(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(registry, name) {
		return fmt.Errorf("group %s already exists: %w", name, favorite.ErrNoOp)
	}
	return m.registerGroups(ctx, favorite.DefaultGroup, name)
}

// DeleteGroup removes group name and all of its entries. Deleting the
// active group switches back to the default group, which itself cannot be
// deleted.
func (m *Manager) DeleteGroup(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == favorite.DefaultGroup {
		return fmt.Errorf("the %s group cannot be deleted: %w", name, favorite.ErrNoOp)
	}

	view, list, err := m.state(ctx)
	if err != nil {
		return err
	}
	registry, err := m.groups(ctx)
	if err != nil {
		return err
	}

	out := make([]favorite.Entry, 0, len(list))
	for _, e := range list {
		if e.Group != name {
			out = append(out, e)
		}
	}

	registered := slices.Contains(registry, name)
	if !registered && len(out) == len(list) && view.GroupOrDefault() != name {
		return fmt.Errorf("group %s: %w", name, favorite.ErrNotFound)
	}

	if len(out) != len(list) {
		if err := m.save(ctx, out); err != nil {
			return err
		}
	}
	if registered {
		registry = slices.DeleteFunc(registry, func(g string) bool { return g == name })
		if err := m.setScalar(ctx, store.KeyGroups, encodeGroups(registry)); err != nil {
			return err
		}
	}
	if view.GroupOrDefault() == name {
		if err := m.setScalar(ctx, store.KeyCurrentGroup, favorite.DefaultGroup); err != nil {
			return err
		}
	}

	m.log.Info("deleted group", "name", name, "removed", len(list)-len(out))
	return nil
}

func (m *Manager) groups(ctx context.Context) ([]string, error) {
	raw, err := m.scalar(ctx, store.KeyGroups)
	if err != nil {
		return nil, err
	}
	return decodeGroups(raw), nil
}

// registerGroups adds names to the registry, writing only when it changes.
func (m *Manager) registerGroups(ctx context.Context, names ...string) error {
	registry, err := m.groups(ctx)
	if err != nil {
		return err
	}

	changed := false
	for _, name := range names {
		if name != "" && !slices.Contains(registry, name) {
			registry = append(registry, name)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return m.setScalar(ctx, store.KeyGroups, encodeGroups(registry))
}

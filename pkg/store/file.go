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

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of the file backend.
type document struct {
	Resources []favorite.Entry  `yaml:"resources"`
	Settings  map[string]string `yaml:"settings,omitempty"`
}

// File stores favorites in a single YAML file. Writes go to a temporary
// file that is renamed over the original.
type File struct {
	mu   sync.Mutex
	path string
}

// OpenFile returns a file store at path. The file is created on first save.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &File{path: path}, nil
}

// Load implements Store.
func (f *File) Load(ctx context.Context) ([]favorite.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	return doc.Resources, nil
}

// Save implements Store.
func (f *File) Save(ctx context.Context, list []favorite.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	doc.Resources = list
	return f.write(doc)
}

// Scalar implements Store.
func (f *File) Scalar(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return "", err
	}
	return doc.Settings[key], nil
}

// SetScalar implements Store.
func (f *File) SetScalar(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	if doc.Settings == nil {
		doc.Settings = make(map[string]string)
	}
	if value == "" {
		delete(doc.Settings, key)
	} else {
		doc.Settings[key] = value
	}
	return f.write(doc)
}

// Path implements Store.
func (f *File) Path() string {
	return f.path
}

// Close implements Store.
func (f *File) Close() error {
	return nil
}

func (f *File) read() (*document, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return &doc, nil
}

func (f *File) write(doc *document) error {
	if doc.Resources == nil {
		doc.Resources = []favorite.Entry{}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".favorites-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}

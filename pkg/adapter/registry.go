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


// Package adapter provides the registry for importers and exporters.
package adapter

import (
	"slices"
	"strings"
	"sync"

	"github.com/cloudygreybeard/favorites/pkg/export"
	"github.com/cloudygreybeard/favorites/pkg/importer"
)

var (
	importersMu sync.RWMutex
	importers   = make(map[string]importer.Adapter)
	exportersMu sync.RWMutex
	exporters   = make(map[string]export.Adapter)
)

// RegisterImporter registers an importer, replacing one of the same name.
func RegisterImporter(a importer.Adapter) {
	importersMu.Lock()
	defer importersMu.Unlock()
	importers[a.Name()] = a
}

// RegisterExporter registers an exporter, replacing one of the same name.
func RegisterExporter(a export.Adapter) {
	exportersMu.Lock()
	defer exportersMu.Unlock()
	exporters[a.Name()] = a
}

// Importer returns an importer by name.
func Importer(name string) (importer.Adapter, bool) {
	importersMu.RLock()
	defer importersMu.RUnlock()
	a, ok := importers[name]
	return a, ok
}

// Exporter returns an exporter by name.
func Exporter(name string) (export.Adapter, bool) {
	exportersMu.RLock()
	defer exportersMu.RUnlock()
	a, ok := exporters[name]
	return a, ok
}

// ExporterFor returns the exporter whose extensions include the extension
// of path.
func ExporterFor(path string) (export.Adapter, bool) {
	lower := strings.ToLower(path)
	for _, a := range Exporters() {
		for _, ext := range a.Extensions() {
			if strings.HasSuffix(lower, ext) {
				return a, true
			}
		}
	}
	return nil, false
}

// Importers returns all registered importers ordered by name.
func Importers() []importer.Adapter {
	importersMu.RLock()
	defer importersMu.RUnlock()
	out := make([]importer.Adapter, 0, len(importers))
	for _, a := range importers {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b importer.Adapter) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// Exporters returns all registered exporters ordered by name.
func Exporters() []export.Adapter {
	exportersMu.RLock()
	defer exportersMu.RUnlock()
	out := make([]export.Adapter, 0, len(exporters))
	for _, a := range exporters {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b export.Adapter) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// ExporterNames returns the names of all registered exporters.
func ExporterNames() []string {
	var names []string
	for _, a := range Exporters() {
		names = append(names, a.Name())
	}
	return names
}

// AvailableImporters returns the importers whose source exists on this
// system.
func AvailableImporters() []importer.Adapter {
	var out []importer.Adapter
	for _, a := range Importers() {
		if a.Available() {
			out = append(out, a)
		}
	}
	return out
}

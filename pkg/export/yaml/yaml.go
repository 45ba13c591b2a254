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


// Package yaml provides an exporter for YAML.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/cloudygreybeard/favorites/pkg/adapter"
	"github.com/cloudygreybeard/favorites/pkg/export"
)

func init() {
	adapter.RegisterExporter(New())
}

// Adapter implements export.Adapter for YAML.
type Adapter struct{}

// New creates a YAML exporter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return "yaml"
}

// DisplayName returns a human-friendly name.
func (a *Adapter) DisplayName() string {
	return "YAML"
}

// Extensions returns supported file extensions.
func (a *Adapter) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Render converts the document to YAML.
func (a *Adapter) Render(doc *export.Document, opts export.Options) ([]byte, error) {
	out := Document{Favorites: export.Entries(doc.Nodes, opts)}
	if opts.IncludeMetadata {
		out.Metadata = export.MetadataOf(doc)
	}
	return yaml.Marshal(out)
}

// Document is the top-level YAML structure.
type Document struct {
	Metadata  *export.Metadata `yaml:"metadata,omitempty"`
	Favorites []export.Entry   `yaml:"favorites"`
}

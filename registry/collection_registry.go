/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yardimhane/casestore/errors"
)

// Descriptor maps one logical collection name to its provider-specific IDs.
type Descriptor struct {
	// Logical is the stable name used throughout application code.
	Logical string `yaml:"logical"`
	// ProviderIDs maps a provider name (e.g. "mongo", "dynamodb") to the
	// collection identifier that provider understands.
	ProviderIDs map[string]string `yaml:"providers"`
}

// Registry is the immutable mapping from logical collection names to
// provider collection IDs, plus the shared database identifier.
// It is built once at process start and is safe for concurrent readers.
type Registry struct {
	database    string
	descriptors map[string]Descriptor
}

// registryFile is the YAML wire shape consumed by Parse.
type registryFile struct {
	Database    string       `yaml:"database"`
	Collections []Descriptor `yaml:"collections"`
}

// New builds a Registry from a database identifier and a set of descriptors.
// Duplicate logical names and descriptors without provider IDs are rejected.
func New(database string, descriptors []Descriptor) (*Registry, error) {
	if database == "" {
		return nil, fmt.Errorf("registry: database identifier is required")
	}

	byLogical := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if d.Logical == "" {
			return nil, fmt.Errorf("registry: descriptor with empty logical name")
		}
		if len(d.ProviderIDs) == 0 {
			return nil, fmt.Errorf("registry: collection %q has no provider IDs", d.Logical)
		}
		if _, exists := byLogical[d.Logical]; exists {
			return nil, fmt.Errorf("registry: collection %q declared twice", d.Logical)
		}
		ids := make(map[string]string, len(d.ProviderIDs))
		for prov, id := range d.ProviderIDs {
			if id == "" {
				return nil, fmt.Errorf("registry: collection %q has empty ID for provider %q", d.Logical, prov)
			}
			ids[prov] = id
		}
		byLogical[d.Logical] = Descriptor{Logical: d.Logical, ProviderIDs: ids}
	}

	return &Registry{database: database, descriptors: byLogical}, nil
}

// Parse builds a Registry from YAML configuration bytes.
func Parse(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("registry: failed to parse YAML: %w", err)
	}
	return New(file.Database, file.Collections)
}

// Database returns the shared database identifier all collections live under.
func (r *Registry) Database() string {
	return r.database
}

// Resolve returns the provider-specific collection ID for a logical name.
// A logical name outside the registered set, or a collection with no mapping
// for the given provider, yields ErrUnknownCollection.
func (r *Registry) Resolve(provider, logical string) (string, error) {
	d, ok := r.descriptors[logical]
	if !ok {
		return "", errors.NewUnknownCollectionError(logical, provider)
	}
	id, ok := d.ProviderIDs[provider]
	if !ok {
		return "", errors.NewUnknownCollectionError(logical, provider)
	}
	return id, nil
}

// Has reports whether a logical collection name is registered.
func (r *Registry) Has(logical string) bool {
	_, ok := r.descriptors[logical]
	return ok
}

// Logicals returns the sorted logical names of all registered collections.
func (r *Registry) Logicals() []string {
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Providers returns the sorted provider names a logical collection maps to,
// or nil if the collection is not registered.
func (r *Registry) Providers(logical string) []string {
	d, ok := r.descriptors[logical]
	if !ok {
		return nil
	}
	provs := make([]string, 0, len(d.ProviderIDs))
	for p := range d.ProviderIDs {
		provs = append(provs, p)
	}
	sort.Strings(provs)
	return provs
}

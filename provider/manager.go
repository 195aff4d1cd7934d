/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package provider

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named Provider instances. Deployments
// that run two backends side by side (the migration scenario) register both
// and pick one per store.
type Manager struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewManager creates an empty provider Manager.
func NewManager() *Manager {
	return &Manager{
		providers: make(map[string]Provider),
	}
}

// Register stores the provider under its own Name().
func (m *Manager) Register(p Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if _, exists := m.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}
	m.providers[name] = p
	return nil
}

// Get retrieves the provider registered under the given name.
func (m *Manager) Get(name string) (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.providers[name]
	if !exists {
		return nil, fmt.Errorf("provider %q not registered", name)
	}
	return p, nil
}

// Names returns the names of all registered providers.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}

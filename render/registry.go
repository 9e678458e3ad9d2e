package render

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory returns a fresh, unstarted backend.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	factories  = make(map[string]BackendFactory)
)

// Register makes a backend available under name. Backend packages call it
// from init, so importing one for side effects is enough to use it:
//
//	import _ "github.com/xhgen/reticle/render/raster"
//
// It panics on a nil factory or a name that is already taken.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("render: nil factory for backend " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, taken := factories[name]; taken {
		panic("render: backend " + name + " registered twice")
	}
	factories[name] = factory
}

// Unregister drops name. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	delete(factories, name)
	registryMu.Unlock()
}

// NewBackend returns a new instance of the backend registered as name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory := factories[name]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("render: no backend %q registered (missing import of its package?)", name)
	}
	return factory(), nil
}

// Backends lists registered names alphabetically.
func Backends() []string {
	registryMu.RLock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has a backend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return factories[name] != nil
}

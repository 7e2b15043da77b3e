package module

import "sync"

// The registry is filled once during bootstrap, before the server accepts
// traffic, and read thereafter. A plain RWMutex map is enough for that
var (
	regMu sync.RWMutex
	ports = map[string]any{}
)

// Register publishes a module's port bundle under its name
func Register(name string, bundle any) {
	regMu.Lock()
	defer regMu.Unlock()
	ports[name] = bundle
}

// PortsAs looks up the bundle registered under name and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, found := ports[name]
	regMu.RUnlock()
	if !found {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset empties the registry, for tests
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()
	ports = map[string]any{}
}

package module

import "reflect"

// PortSet marks a module defined port bundle. Modules declare concrete
// interface types for their ports and hand a bundle of them to Ports()
type PortSet = any

// PortsOf extracts an interface T from a module's Ports() bundle.
// The bundle may implement T itself, or carry it on an exported struct field.
// ok is false when neither holds
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, hit := p.(T); hit {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, hit := f.Interface().(T); hit {
			return v, true
		}
	}
	return t, false
}

// MustPortsOf panics when the module does not expose T
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}

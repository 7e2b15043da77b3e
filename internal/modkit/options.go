package modkit

import (
	"net/http"

	phttp "joblens/internal/platform/net/http"
)

// settings accumulates option values until Build snapshots them
type settings struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// Option configures one aspect of a module build
type Option func(*settings)

// WithName names the module for the registry and for logs
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithPrefix sets the path prefix the module mounts under
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithMiddlewares appends middleware applied to every route of the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(s *settings) { s.mw = append(s.mw, mw...) }
}

// WithPorts attaches the port set other modules can look up through the registry
func WithPorts[T any](p T) Option {
	return func(s *settings) { s.ports = p }
}

// WithSwagger enables the swagger UI for this module
func WithSwagger(enabled bool) Option {
	return func(s *settings) { s.swaggerOn = enabled }
}

// WithSubrouter overrides how the module derives its own router from the parent
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(s *settings) { s.subrouter = fn }
}

// WithRegister sets the callback that attaches the module's endpoints
func WithRegister(fn func(phttp.Router)) Option {
	return func(s *settings) { s.register = fn }
}

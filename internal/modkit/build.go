package modkit

import (
	"net/http"

	"joblens/internal/modkit/httpkit"
)

// Built is the snapshot of module settings a module keeps after construction
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// Subrouter derives the module router from the parent, Register attaches routes
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build folds the options into a Built value with safe defaults
func Build(opts ...Option) Built {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	b := Built{
		Name:      s.name,
		Prefix:    s.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), s.mw...),
		Ports:     s.ports,
		SwaggerOn: s.swaggerOn,
		Subrouter: s.subrouter,
		Register:  s.register,
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// Package module wires search into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "joblens/internal/modkit"
	"joblens/internal/modkit/httpkit"
	str "joblens/internal/platform/strings"
	searchhttp "joblens/internal/services/api/search/http"
	searchrepo "joblens/internal/services/api/search/repo"
	searchsvc "joblens/internal/services/api/search/service"
)

// Module implements the search module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc searchsvc.Service
}

// New constructs the search module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")}, opts...)...)

	repo := searchrepo.NewPG()
	svc := searchsvc.New(deps.PG, repo, searchsvc.Options{
		Events:        deps.CH,
		Cache:         deps.RDS,
		SlowThreshold: slowThreshold(deps),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Search: adaptSearchPort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		searchhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

func slowThreshold(deps modkit.Deps) time.Duration {
	ms := deps.Cfg.MayInt("SLOW_SEARCH_MS", 300)
	return time.Duration(ms) * time.Millisecond
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

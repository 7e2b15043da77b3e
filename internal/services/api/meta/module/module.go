// Package module mounts the meta endpoints (health, readiness, version)
package module

import (
	"net/http"
	"time"

	modkit "joblens/internal/modkit"
	"joblens/internal/modkit/httpkit"
	str "joblens/internal/platform/strings"

	metahttp "joblens/internal/services/api/meta/http"
)

// Module exposes the operational endpoints every deployment of the API carries
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New builds the meta module. The store seams in deps drive the readiness probe
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	extra := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "joblens-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
			CH:          deps.CH,
			RDS:         deps.RDS,
		})
		if extra != nil {
			extra(r)
		}
	}

	return m
}

// MountRoutes attaches the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

// Name reports the registry name for this module
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix reports the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares reports the module scoped middleware chain
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports is nil, meta exposes nothing for cross module wiring
func (m *Module) Ports() any { return nil }

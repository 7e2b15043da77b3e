package modkit

import (
	phttp "joblens/internal/platform/net/http"
)

// Module is what the API assembler needs from every feature module.
// The surface stays small on purpose, modules do not see each other directly
type Module interface {
	// MountRoutes attaches the module's endpoints to the given router seam
	MountRoutes(r phttp.Router)
	// Ports exposes the module's cross wiring surface, nil when it has none
	Ports() any
	// Name identifies the module in the registry and in logs
	Name() string
}

// Builder is the conventional shape of a module constructor,
// New(deps Deps, opts ...Option) Module
type Builder func(Deps, ...Option) Module

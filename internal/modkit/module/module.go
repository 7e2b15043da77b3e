// Package module holds the module contract and the process-wide ports registry
package module

import (
	phttp "joblens/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives in this sibling package so that a
// feature module can export its ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

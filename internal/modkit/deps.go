// Package modkit assembles feature modules from shared dependencies
package modkit

import (
	"joblens/internal/modkit/repokit"
	"joblens/internal/platform/config"
	"joblens/internal/platform/logger"
	"joblens/internal/platform/store"
)

// Deps is the shared dependency bundle handed to every module constructor.
// CH and RDS are optional backends and may be nil, modules must tolerate that
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDS store.Cache
}

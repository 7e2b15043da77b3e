package store

import (
	"joblens/internal/platform/logger"
)

// Option adjusts the Store while Open assembles it
type Option func(*Store) error

// WithLogger routes backend client logs through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

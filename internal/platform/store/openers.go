package store

import (
	"context"
	"fmt"
	"time"

	chx "joblens/internal/platform/store/ch"
	"joblens/internal/platform/store/pg"
	"joblens/internal/platform/store/rds"
)

// openPG connects the pool, waits for it to answer a ping, then wraps it
// with the sql adapter. The retry loop covers the common case of the
// database container coming up alongside the API
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	if err := awaitPing(ctx, p); err != nil {
		p.Close()
		return nil, err
	}

	a := newPGAdapter(p)
	s.PG = a
	return a, nil
}

// awaitPing pings the pool with exponential backoff until it answers,
// the attempt budget runs out, or ctx is cancelled
func awaitPing(ctx context.Context, p *pg.PG) error {
	const (
		maxAttempts    = 20
		pingTimeout    = 3 * time.Second
		backoffCeiling = 2 * time.Second
	)

	backoff := 150 * time.Millisecond
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(backoff)
		if backoff *= 2; backoff > backoffCeiling {
			backoff = backoffCeiling
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", maxAttempts, lastErr)
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, AppName: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

func openRDS(ctx context.Context, cfg Config) (Cache, error) {
	return rds.Open(ctx, rds.Config{URL: cfg.RDS.URL})
}

package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"joblens/internal/platform/store"
)

type pingTx struct {
	memQuerier
	err error
}

func (p *pingTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(p) }
func (p *pingTx) Ping(context.Context) error                                      { return p.err }

type pingCH struct{ err error }

func (p *pingCH) Insert(context.Context, string, [][]any) error                { return nil }
func (p *pingCH) Query(context.Context, string, ...any) (store.Rows, error)    { return nil, nil }
func (p *pingCH) Close() error                                                 { return nil }
func (p *pingCH) Ping(context.Context) error                                   { return p.err }

type pingCache struct{ err error }

func (p *pingCache) Get(context.Context, string) (string, bool, error)      { return "", false, nil }
func (p *pingCache) SetEX(context.Context, string, string, time.Duration) error { return nil }
func (p *pingCache) Close() error                                           { return nil }
func (p *pingCache) Ping(context.Context) error                             { return p.err }

func TestGuard_AllHealthy(t *testing.T) {
	s := &store.Store{PG: &pingTx{}, CH: &pingCH{}, RDS: &pingCache{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGuard_NilBackendsAreSkipped(t *testing.T) {
	s := &store.Store{PG: &pingTx{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGuard_ReportsEveryFailure(t *testing.T) {
	s := &store.Store{
		PG:  &pingTx{err: errors.New("pg down")},
		CH:  &pingCH{err: errors.New("ch down")},
		RDS: &pingCache{},
	}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "pg") || !strings.Contains(msg, "ch") {
		t.Fatalf("expected both failures reported got %q", msg)
	}
}

func TestGuard_NilStore(t *testing.T) {
	var s *store.Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

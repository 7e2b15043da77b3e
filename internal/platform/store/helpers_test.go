package store_test

import (
	"context"
	"errors"
	"testing"

	"joblens/internal/platform/store"
)

type memRows struct {
	vals []int64
	pos  int
	err  error
}

func (m *memRows) Next() bool {
	if m.pos >= len(m.vals) {
		return false
	}
	m.pos++
	return true
}

func (m *memRows) Scan(dest ...any) error {
	if p, ok := dest[0].(*int64); ok {
		*p = m.vals[m.pos-1]
	}
	return nil
}

func (m *memRows) Err() error        { return m.err }
func (m *memRows) Close()            {}
func (m *memRows) Columns() []string { return []string{"v"} }

type memQuerier struct {
	rows   *memRows
	scalar int64
	qErr   error
}

func (m *memQuerier) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, nil
}

func (m *memQuerier) Query(context.Context, string, ...any) (store.Rows, error) {
	if m.qErr != nil {
		return nil, m.qErr
	}
	return m.rows, nil
}

func (m *memQuerier) QueryRow(context.Context, string, ...any) store.Row {
	return scalarRow{v: m.scalar}
}

type scalarRow struct{ v int64 }

func (s scalarRow) Scan(dest ...any) error {
	if p, ok := dest[0].(*int64); ok {
		*p = s.v
	}
	return nil
}

func scanV(r store.Row) (int64, error) {
	var v int64
	err := r.Scan(&v)
	return v, err
}

func TestScalar(t *testing.T) {
	q := &memQuerier{scalar: 7}
	got, err := store.Scalar[int64](context.Background(), q, "select 7")
	if err != nil || got != 7 {
		t.Fatalf("expected 7 got %d err %v", got, err)
	}
}

func TestMany(t *testing.T) {
	q := &memQuerier{rows: &memRows{vals: []int64{1, 2, 3}}}
	got, err := store.Many(context.Background(), q, scanV, "select v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("unexpected rows %v", got)
	}
}

func TestMany_QueryErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	q := &memQuerier{qErr: boom}
	if _, err := store.Many(context.Background(), q, scanV, "select v"); !errors.Is(err, boom) {
		t.Fatalf("expected boom got %v", err)
	}
}

func TestOne(t *testing.T) {
	q := &memQuerier{rows: &memRows{vals: []int64{42}}}
	got, err := store.One(context.Background(), q, scanV, "select v")
	if err != nil || got != 42 {
		t.Fatalf("expected 42 got %d err %v", got, err)
	}
}

func TestOne_EmptyIsNotFound(t *testing.T) {
	q := &memQuerier{rows: &memRows{}}
	_, err := store.One(context.Background(), q, scanV, "select v")
	if err == nil {
		t.Fatalf("expected not found")
	}
}

func TestOne_MultipleRowsIsAnError(t *testing.T) {
	q := &memQuerier{rows: &memRows{vals: []int64{1, 2}}}
	if _, err := store.One(context.Background(), q, scanV, "select v"); err == nil {
		t.Fatalf("expected error for extra rows")
	}
}

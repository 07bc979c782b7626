package repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fundraiser/internal/infra"
)

// stubSQL records statements and answers them from canned rows.
type stubSQL struct {
	rows     map[string][][]any
	row      map[string][]any
	rowErr   map[string]error
	execErr  map[string]error
	queryErr error

	execs   []stubCall
	queries []stubCall
	txs     int
	commits int
}

type stubCall struct {
	query string
	args  []any
}

func (s *stubSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.execs = append(s.execs, stubCall{query: query, args: args})
	if err := s.execErr[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (s *stubSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.queries = append(s.queries, stubCall{query: query, args: args})
	if err := s.rowErr[query]; err != nil {
		return stubRow{err: err}
	}
	values, ok := s.row[query]
	if !ok {
		return stubRow{err: pgx.ErrNoRows}
	}
	return stubRow{values: values}
}

func (s *stubSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.queries = append(s.queries, stubCall{query: query, args: args})
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return &stubRows{rows: s.rows[query]}, nil
}

func (s *stubSQL) WithTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	s.txs++
	if err := fn(s); err != nil {
		return err
	}
	s.commits++
	return nil
}

var _ infra.TxRunner = (*stubSQL)(nil)

type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

type stubRows struct {
	testRowsBase
	rows [][]any
	idx  int
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	return assign(r.rows[r.idx-1], dest)
}

func (r *stubRows) Err() error { return nil }

func (r *stubRows) Close() {}

// assign copies values into pointer destinations by reflection.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: got %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return errors.New("scan: destination must be a non-nil pointer")
		}
		elem := target.Elem()
		if v == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(elem.Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", v, elem.Type())
		}
		elem.Set(val)
	}
	return nil
}

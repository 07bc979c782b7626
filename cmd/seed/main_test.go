package main

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"fundraiser/internal/sqlinline"
)

type recordedExec struct {
	query string
	args  []any
}

type fakeDB struct {
	execs  []recordedExec
	failOn string
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	if f.failOn != "" && query == f.failOn {
		return nil, errors.New("exec failed")
	}
	f.execs = append(f.execs, recordedExec{query: query, args: args})
	return nil, nil
}

func (f *fakeDB) count(query string) int {
	n := 0
	for _, e := range f.execs {
		if e.query == query {
			n++
		}
	}
	return n
}

func TestSeedLoadsDemoData(t *testing.T) {
	db := &fakeDB{}
	logger := zerolog.Nop()
	if err := (&SeedCmd{}).Run(context.Background(), db, &logger); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := db.count(sqlinline.QUpsertProject); got != 6 {
		t.Fatalf("project upserts = %d, want 6", got)
	}
	if got := db.count(sqlinline.QSeedDonation); got != 5 {
		t.Fatalf("donation inserts = %d, want 5", got)
	}
	first := db.execs[0]
	if len(first.args) != 10 || first.args[0] != "1" || first.args[2] != "Village" || first.args[5] != float64(32500) {
		t.Fatalf("unexpected first project args: %v", first.args)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	db := &fakeDB{}
	logger := zerolog.Nop()
	err := (&ResetCmd{}).Run(context.Background(), db, &logger)
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected confirmation error, got %v", err)
	}
	if len(db.execs) != 0 {
		t.Fatalf("nothing should run without --yes, got %d execs", len(db.execs))
	}
}

func TestResetRunsInOrder(t *testing.T) {
	db := &fakeDB{}
	logger := zerolog.Nop()
	if err := (&ResetCmd{Yes: true}).Run(context.Background(), db, &logger); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if db.execs[0].query != sqlinline.QDropSchema || db.execs[1].query != sqlinline.QCreateSchema {
		t.Fatalf("reset must drop then create before seeding")
	}
	if len(db.execs) != 2+6+5 {
		t.Fatalf("execs = %d, want 13", len(db.execs))
	}
}

func TestMigrateWrapsError(t *testing.T) {
	db := &fakeDB{failOn: sqlinline.QCreateSchema}
	logger := zerolog.Nop()
	err := (&MigrateCmd{}).Run(context.Background(), db, &logger)
	if err == nil || !strings.Contains(err.Error(), "create schema") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

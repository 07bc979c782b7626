package infra

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantMarker string
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "valid marker",
			query:      "--sql 3f1b8f5e-5d0a-4f0e-9a57-3f7c2f9e1a01\nselect 1;\n",
			wantMarker: "3f1b8f5e-5d0a-4f0e-9a57-3f7c2f9e1a01",
			wantBody:   "select 1;",
		},
		{
			name:    "missing marker",
			query:   "select 1;",
			wantErr: true,
		},
		{
			name:    "uppercase uuid rejected",
			query:   "--sql 3F1B8F5E-5D0A-4F0E-9A57-3F7C2F9E1A01\nselect 1;",
			wantErr: true,
		},
		{
			name:    "empty",
			query:   "   ",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			marker, body, err := extractMarker(tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got marker %q", marker)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractMarker error: %v", err)
			}
			if marker != tc.wantMarker {
				t.Fatalf("marker = %q, want %q", marker, tc.wantMarker)
			}
			if body != tc.wantBody {
				t.Fatalf("body = %q, want %q", body, tc.wantBody)
			}
		})
	}
}

type recordingQueryer struct {
	sql  string
	args []any
	err  error
}

func (q *recordingQueryer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.NewCommandTag("UPDATE 1"), q.err
}

func (q *recordingQueryer) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return errorRow{err: pgx.ErrNoRows}
}

func (q *recordingQueryer) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	q.args = args
	return nil, q.err
}

func TestMarkedExecStripsMarker(t *testing.T) {
	q := &recordingQueryer{}
	query := "--sql 3f1b8f5e-5d0a-4f0e-9a57-3f7c2f9e1a01\nupdate projects set raised_amount = raised_amount + $1;"
	tag, err := markedExec(context.Background(), q, zerolog.Nop(), query, 10.0)
	if err != nil {
		t.Fatalf("markedExec error: %v", err)
	}
	if tag.RowsAffected() != 1 {
		t.Fatalf("RowsAffected = %d, want 1", tag.RowsAffected())
	}
	if q.sql != "update projects set raised_amount = raised_amount + $1;" {
		t.Fatalf("unexpected sql sent: %q", q.sql)
	}
	if len(q.args) != 1 || q.args[0] != 10.0 {
		t.Fatalf("unexpected args: %#v", q.args)
	}
}

func TestMarkedCallsRejectUnmarkedSQL(t *testing.T) {
	q := &recordingQueryer{}
	if _, err := markedExec(context.Background(), q, zerolog.Nop(), "delete from donations"); err == nil {
		t.Fatalf("expected marker error from exec")
	}
	if _, err := markedQuery(context.Background(), q, zerolog.Nop(), "select 1"); err == nil {
		t.Fatalf("expected marker error from query")
	}
	var id string
	if err := markedQueryRow(context.Background(), q, zerolog.Nop(), "select 1").Scan(&id); err == nil {
		t.Fatalf("expected marker error from query row")
	}
	if q.sql != "" {
		t.Fatalf("unmarked sql reached the database: %q", q.sql)
	}
}

func TestMarkedQueryPropagatesError(t *testing.T) {
	q := &recordingQueryer{err: errors.New("boom")}
	_, err := markedQuery(context.Background(), q, zerolog.Nop(), "--sql 3f1b8f5e-5d0a-4f0e-9a57-3f7c2f9e1a01\nselect 1")
	if err == nil || err.Error() != "boom" {
		t.Fatalf("markedQuery error = %v, want boom", err)
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(pgx.ErrNoRows) {
		t.Fatalf("IsNoRows(pgx.ErrNoRows) = false")
	}
	if !IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)) {
		t.Fatalf("IsNoRows(wrapped) = false")
	}
	if IsNoRows(errors.New("other")) {
		t.Fatalf("IsNoRows(other) = true")
	}
}

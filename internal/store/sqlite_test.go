package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestSQLiteStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return newSQLiteStore(db), mock, db
}

func TestSQLiteStore_Has(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery("SELECT 1 FROM entities").
		WithArgs("notes", "n1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	found, err := s.Has(ctx, "notes/n1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Error("expected Has to report true")
	}

	mock.ExpectQuery("SELECT 1 FROM entities").
		WithArgs("notes", "missing").
		WillReturnError(sql.ErrNoRows)

	found, err = s.Has(ctx, "notes/missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected Has to report false for missing key")
	}
}

func TestSQLiteStore_GetRecord(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM entities").
		WithArgs("notes", "n1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"id":"n1"}`))

	raw, err := s.Get(ctx, "notes/n1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"id":"n1"}` {
		t.Errorf("unexpected value: %s", raw)
	}
}

func TestSQLiteStore_GetMissingRecordIsNil(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM entities").
		WithArgs("notes", "missing").
		WillReturnError(sql.ErrNoRows)

	raw, err := s.Get(ctx, "notes/missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != nil {
		t.Errorf("expected nil for missing record, got %s", raw)
	}
}

func TestSQLiteStore_GetCollection(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, value FROM entities").
		WithArgs("notes").
		WillReturnRows(sqlmock.NewRows([]string{"id", "value"}).
			AddRow("a", `{"id":"a"}`).
			AddRow("b", `{"id":"b"}`))

	raw, err := s.Get(ctx, "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records map[string]json.RawMessage
	if err = json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("collection is not a JSON object: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestSQLiteStore_SetUpserts(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO entities").
		WithArgs("notes", "n1", `{"id":"n1"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Set(ctx, "notes/n1", map[string]string{"id": "n1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteStore_SetExecError(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO entities").
		WillReturnError(errors.New("disk I/O error"))

	err := s.Set(ctx, "notes/n1", map[string]string{"id": "n1"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM entities").
		WithArgs("notes", "n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(ctx, "notes/n1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteStore_SetCollectionReplacesRows(t *testing.T) {
	s, mock, db := newTestSQLiteStore(t)
	defer db.Close()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entities").
		WithArgs("notes").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO entities").
		WithArgs("notes", "a", `{"id":"a"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.Set(ctx, "notes", map[string]json.RawMessage{"a": json.RawMessage(`{"id":"a"}`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/papyrus-labs/papyrusdb/migrations"
)

const entitiesTable = "entities"

// sqliteStore keeps the key/value contract on a single SQLite table
// (collection, id, value). Every statement commits on its own, so SaveNow
// has nothing left to flush.
type sqliteStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// NewSQLiteStore opens (or creates) the SQLite database at path and brings
// its schema up to date.
func NewSQLiteStore(path string) (EntityStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, err
	}

	return newSQLiteStore(db), nil
}

func newSQLiteStore(db *sql.DB) *sqliteStore {
	return &sqliteStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *sqliteStore) Has(ctx context.Context, key string) (bool, error) {
	collection, id, err := parseSQLKey(key)
	if err != nil {
		return false, err
	}

	where := sq.Eq{"collection": collection}
	if id != "" {
		where["id"] = id
	}

	query, args, err := s.builder.
		Select("1").
		From(entitiesTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return true, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	collection, id, err := parseSQLKey(key)
	if err != nil {
		return nil, err
	}

	if id == "" {
		return s.getCollection(ctx, collection)
	}

	query, args, err := s.builder.
		Select("value").
		From(entitiesTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return json.RawMessage(value), nil
}

func (s *sqliteStore) getCollection(ctx context.Context, collection string) (json.RawMessage, error) {
	query, args, err := s.builder.
		Select("id", "value").
		From(entitiesTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make(map[string]json.RawMessage)
	for rows.Next() {
		var id, value string
		if err = rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		records[id] = json.RawMessage(value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	if len(records) == 0 {
		// The collection key still "exists" once any record was ever written
		// under it; an empty result is indistinguishable from a missing
		// collection here, and callers treat both as the empty object.
		return json.RawMessage("{}"), nil
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode collection %q: %w", collection, err)
	}
	return raw, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value any) error {
	collection, id, err := parseSQLKey(key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}

	if id == "" {
		return s.setCollection(ctx, collection, raw)
	}

	query, args, err := s.builder.
		Insert(entitiesTable).
		Columns("collection", "id", "value").
		Values(collection, id, string(raw)).
		Suffix("ON CONFLICT(collection, id) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStore) setCollection(ctx context.Context, collection string, raw json.RawMessage) error {
	var records map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCollectionValue, collection)
	}

	deleteQuery, deleteArgs, err := s.builder.
		Delete(entitiesTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	for id, value := range records {
		insertQuery, insertArgs, err := s.builder.
			Insert(entitiesTable).
			Columns("collection", "id", "value").
			Values(collection, id, string(value)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	collection, id, err := parseSQLKey(key)
	if err != nil {
		return err
	}

	where := sq.Eq{"collection": collection}
	if id != "" {
		where["id"] = id
	}

	query, args, err := s.builder.
		Delete(entitiesTable).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

// SaveNow is a no-op: SQLite makes each statement durable at commit.
func (s *sqliteStore) SaveNow(_ context.Context) error {
	return nil
}

func parseSQLKey(key string) (collection, id string, err error) {
	if key == "" {
		return "", "", ErrEmptyKey
	}
	collection, id = splitKey(key)
	if collection == "" {
		return "", "", ErrEmptyKey
	}
	return collection, id, nil
}

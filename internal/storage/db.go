package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBStore keeps values as JSON in the kv_entries table
type DBStore struct {
	db *sqlx.DB
}

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(ctx context.Context, key string, value any) error {
	var contents []byte
	err := s.db.GetContext(ctx, &contents, "SELECT value FROM kv_entries WHERE `key` = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("db.GetContext(kv_entry) > %w", err)
	}
	if err := json.Unmarshal(contents, value); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", key, err)
	}
	return nil
}

func (s *DBStore) Save(ctx context.Context, key string, value any) error {
	contents, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO kv_entries (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		key, contents)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert kv_entry) > %w", err)
	}
	return nil
}

package dictionary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// TranslationEntry is a cached remote translation row
type TranslationEntry struct {
	Word       string          `db:"word"`
	SourceType string          `db:"source_type"`
	Response   json.RawMessage `db:"response"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

// TranslationRepository persists remote translations in MySQL. It is used as
// the persistent cache when the storage driver is mysql.
type TranslationRepository struct {
	db *sqlx.DB
}

func NewTranslationRepository(db *sqlx.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// FindByWord returns nil when the word has not been cached
func (r *TranslationRepository) FindByWord(ctx context.Context, word string) (*TranslationEntry, error) {
	var entry TranslationEntry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM translation_entries WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(translation_entry) > %w", err)
	}
	return &entry, nil
}

func (r *TranslationRepository) Upsert(ctx context.Context, entry *TranslationEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO translation_entries (word, source_type, response)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE source_type = VALUES(source_type), response = VALUES(response)`,
		entry.Word, entry.SourceType, entry.Response)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert translation_entry) > %w", err)
	}
	return nil
}

func (r *TranslationRepository) Read(ctx context.Context, word string) (Translation, bool, error) {
	entry, err := r.FindByWord(ctx, word)
	if err != nil {
		return Translation{}, false, err
	}
	if entry == nil {
		return Translation{}, false, nil
	}

	var translation Translation
	if err := json.Unmarshal(entry.Response, &translation); err != nil {
		return Translation{}, false, fmt.Errorf("json.Unmarshal(%s) > %w", word, err)
	}
	return translation, true, nil
}

func (r *TranslationRepository) Write(ctx context.Context, translation Translation) error {
	response, err := json.Marshal(translation)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	return r.Upsert(ctx, &TranslationEntry{
		Word:       translation.Word,
		SourceType: string(translation.Source),
		Response:   response,
	})
}

// Package storage persists the user's settings, error log and personal
// flashcards under string keys.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key-value store. Load leaves value untouched and
// returns ErrNotFound when nothing was saved under the key, so callers can
// pre-fill defaults.
type Store interface {
	Load(ctx context.Context, key string, value any) error
	Save(ctx context.Context, key string, value any) error
}

const (
	KeySettings   = "polypal-settings"
	KeyErrorLog   = "polypal-error-log"
	KeyFlashcards = "polypal-flashcards"
)

package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=translator.go -destination=../mocks/dictionary/mock_translator.go -package=mock_dictionary

// WordLookup translates words the static table does not know
type WordLookup interface {
	IsConfigured() bool
	TranslateWord(ctx context.Context, word string) (Translation, error)
}

// PersistentCache keeps remote translations across sessions
type PersistentCache interface {
	Read(ctx context.Context, word string) (Translation, bool, error)
	Write(ctx context.Context, translation Translation) error
}

type Translator struct {
	static     *StaticDictionary
	remote     WordLookup
	persistent PersistentCache
	logger     *slog.Logger

	mu    sync.RWMutex
	cache map[string]Translation
}

type TranslatorOption func(*Translator)

func WithRemote(remote WordLookup) TranslatorOption {
	return func(t *Translator) {
		t.remote = remote
	}
}

func WithPersistentCache(cache PersistentCache) TranslatorOption {
	return func(t *Translator) {
		t.persistent = cache
	}
}

func WithTranslatorLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

func NewTranslator(static *StaticDictionary, opts ...TranslatorOption) *Translator {
	translator := &Translator{
		static: static,
		logger: slog.Default(),
		cache:  make(map[string]Translation),
	}
	for _, opt := range opts {
		opt(translator)
	}
	return translator
}

func (t *Translator) remoteConfigured() bool {
	return t.remote != nil && t.remote.IsConfigured()
}

// Clickable reports whether Translate can produce something for the token
func (t *Translator) Clickable(token string) bool {
	word := Normalize(token)
	if word == "" {
		return false
	}
	if _, ok := t.static.Lookup(word); ok {
		return true
	}
	return t.remoteConfigured()
}

// Translate resolves a token through the static table, then the caches, then
// the remote lookup. Remote failures come back as a translation flagged
// Unavailable instead of an error; ErrNotTranslatable is the only error.
func (t *Translator) Translate(ctx context.Context, token string) (Translation, error) {
	word := Normalize(token)
	if word == "" {
		return Translation{}, fmt.Errorf("%w: empty token", ErrNotTranslatable)
	}
	if translation, ok := t.static.Lookup(word); ok {
		return Translation{
			Word:        word,
			Translation: translation,
			Source:      SourceStatic,
		}, nil
	}
	if !t.remoteConfigured() {
		return Translation{}, fmt.Errorf("%w: %s", ErrNotTranslatable, word)
	}

	if translation, ok := t.cached(word); ok {
		translation.Source = SourceCache
		return translation, nil
	}
	if t.persistent != nil {
		translation, ok, err := t.persistent.Read(ctx, word)
		if err != nil {
			t.logger.Warn("Failed to read the translation cache",
				"word", word,
				"error", err)
		} else if ok {
			t.remember(word, translation)
			translation.Source = SourceCache
			return translation, nil
		}
	}

	translation, err := t.remote.TranslateWord(ctx, word)
	if err != nil {
		t.logger.Warn("Failed to translate word",
			"word", word,
			"error", err)
		sentinel := FailedTranslation
		if errors.Is(err, ErrMalformedResponse) {
			sentinel = UnavailableTranslation
		}
		return Translation{
			Word:        word,
			Translation: sentinel,
			Source:      SourceRemote,
			Unavailable: true,
		}, nil
	}

	translation.Word = word
	translation.Source = SourceRemote
	t.remember(word, translation)
	if t.persistent != nil {
		if err := t.persistent.Write(ctx, translation); err != nil {
			t.logger.Warn("Failed to write the translation cache",
				"word", word,
				"error", err)
		}
	}
	return translation, nil
}

func (t *Translator) cached(word string) (Translation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	translation, ok := t.cache[word]
	return translation, ok
}

func (t *Translator) remember(word string, translation Translation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache[word] = translation
}

// ClearCache drops the in-memory cache only
func (t *Translator) ClearCache() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache = make(map[string]Translation)
}

func (t *Translator) CacheLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cache)
}

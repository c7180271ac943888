package dictionary

import (
	"errors"
)

// Source tells where a translation came from
type Source string

const (
	SourceStatic Source = "static"
	SourceRemote Source = "remote"
	SourceCache  Source = "cache"
)

const (
	// UnavailableTranslation is shown when the remote service answered with
	// something that is not a translation.
	UnavailableTranslation = "Traducción no disponible"
	// FailedTranslation is shown when the remote service could not be reached
	FailedTranslation = "Error de traducción"

	failedFlashcard = "Error al crear flashcard"
)

var (
	// ErrNotTranslatable means the word is not in the static table and no
	// remote translator is configured, so it should not be offered for lookup.
	ErrNotTranslatable = errors.New("word is not translatable")
	// ErrMalformedResponse means the remote service answered with text that
	// is not the expected JSON object.
	ErrMalformedResponse = errors.New("malformed translation response")
)

type Translation struct {
	Word         string   `json:"word" yaml:"word"`
	Translation  string   `json:"translation" yaml:"translation"`
	PartOfSpeech string   `json:"partOfSpeech,omitempty" yaml:"part_of_speech,omitempty"`
	Definition   string   `json:"definition,omitempty" yaml:"definition,omitempty"`
	Examples     []string `json:"examples,omitempty" yaml:"examples,omitempty"`
	Source       Source   `json:"source" yaml:"source"`
	// Unavailable marks a sentinel translation produced after a remote failure
	Unavailable bool `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// FlashcardDraft is a card proposed by the remote service for a word
type FlashcardDraft struct {
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Hint       string     `json:"hint,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	// Fallback is set when the draft was not produced by the remote service
	Fallback bool `json:"fallback,omitempty"`
}

func fallbackFlashcard(word, back string) FlashcardDraft {
	return FlashcardDraft{
		Front:      word,
		Back:       back,
		Difficulty: DifficultyMedium,
		Category:   "general",
		Fallback:   true,
	}
}

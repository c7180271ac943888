package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const flashcardsTemplateName = "flashcards.md.go.tmpl"

//go:embed templates/flashcards.md.go.tmpl
var fallbackFlashcardsTemplate string

// FlashcardTemplate is the top-level data structure for flashcard templates
type FlashcardTemplate struct {
	GeneratedAt time.Time
	Decks       []FlashcardDeck
}

// FlashcardDeck is one deck with its cards, in display order
type FlashcardDeck struct {
	Name  string
	Cards []FlashcardCard
}

type FlashcardCard struct {
	Front   string
	Back    string
	Example string
}

func WriteFlashcards(output io.Writer, templatePath string, templateData FlashcardTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, flashcardsTemplateName, fallbackFlashcardsTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

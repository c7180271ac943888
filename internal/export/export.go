// Package export writes the error log and the flashcard decks as markdown
// files, optionally converted to PDF.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/polypal/internal/assets"
	"github.com/at-ishikawa/polypal/internal/config"
	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/pdf"
)

const (
	errorLogFileName   = "error-log.md"
	flashcardsFileName = "flashcards.md"
)

type Exporter struct {
	outputDirectory    string
	errorLogTemplate   string
	flashcardsTemplate string
	now                func() time.Time
}

type Option func(*Exporter)

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

func NewExporter(outputs config.OutputsConfig, templates config.TemplatesConfig, opts ...Option) *Exporter {
	exporter := &Exporter{
		outputDirectory:    outputs.Directory,
		errorLogTemplate:   templates.ErrorLogTemplate,
		flashcardsTemplate: templates.FlashcardsTemplate,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(exporter)
	}
	return exporter
}

// WriteErrorLog renders entries in the given order
func (e *Exporter) WriteErrorLog(output io.Writer, entries []errorlog.Entry) error {
	data := assets.ErrorLogTemplate{
		GeneratedAt: e.now(),
		Entries:     make([]assets.ErrorLogEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		data.Entries = append(data.Entries, assets.ErrorLogEntry{
			OriginalText:  entry.OriginalText,
			CorrectedText: entry.CorrectedText,
			Explanation:   entry.Explanation,
			Timestamp:     entry.Timestamp,
		})
	}
	if err := assets.WriteErrorLog(output, e.errorLogTemplate, data); err != nil {
		return fmt.Errorf("assets.WriteErrorLog() > %w", err)
	}
	return nil
}

// WriteFlashcards renders one section per non-empty deck
func (e *Exporter) WriteFlashcards(output io.Writer, builtIn, personal []flashcard.Card) error {
	data := assets.FlashcardTemplate{
		GeneratedAt: e.now(),
	}
	for _, deck := range []struct {
		name  string
		cards []flashcard.Card
	}{
		{name: "Mis tarjetas", cards: personal},
		{name: "Palabras comunes", cards: builtIn},
	} {
		if len(deck.cards) == 0 {
			continue
		}
		section := assets.FlashcardDeck{Name: deck.name}
		for _, card := range deck.cards {
			section.Cards = append(section.Cards, assets.FlashcardCard{
				Front:   card.Front,
				Back:    card.Back,
				Example: card.Example,
			})
		}
		data.Decks = append(data.Decks, section)
	}
	if err := assets.WriteFlashcards(output, e.flashcardsTemplate, data); err != nil {
		return fmt.Errorf("assets.WriteFlashcards() > %w", err)
	}
	return nil
}

// ErrorLogFile writes the error log under the output directory and returns
// the path of the markdown file, or of the PDF when toPDF is set.
func (e *Exporter) ErrorLogFile(entries []errorlog.Entry, toPDF bool) (string, error) {
	var buf bytes.Buffer
	if err := e.WriteErrorLog(&buf, entries); err != nil {
		return "", err
	}
	return e.writeFile(errorLogFileName, buf.Bytes(), toPDF)
}

func (e *Exporter) FlashcardsFile(builtIn, personal []flashcard.Card, toPDF bool) (string, error) {
	var buf bytes.Buffer
	if err := e.WriteFlashcards(&buf, builtIn, personal); err != nil {
		return "", err
	}
	return e.writeFile(flashcardsFileName, buf.Bytes(), toPDF)
}

func (e *Exporter) writeFile(fileName string, contents []byte, toPDF bool) (string, error) {
	if err := os.MkdirAll(e.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", e.outputDirectory, err)
	}
	markdownPath := filepath.Join(e.outputDirectory, fileName)
	if err := os.WriteFile(markdownPath, contents, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	if !toPDF {
		return markdownPath, nil
	}

	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return pdfPath, nil
}

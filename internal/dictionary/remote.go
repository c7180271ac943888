package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/polypal/internal/inference"
	"github.com/at-ishikawa/polypal/internal/inference/gemini"
	"github.com/go-resty/resty/v2"
)

// GeminiLookup translates single words and drafts flashcards with the
// generateContent endpoint.
type GeminiLookup struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

type LookupOption func(*GeminiLookup)

func WithLookupBaseURL(baseURL string) LookupOption {
	return func(lookup *GeminiLookup) {
		lookup.httpClient.SetBaseURL(baseURL)
	}
}

func WithLookupTimeout(timeout time.Duration) LookupOption {
	return func(lookup *GeminiLookup) {
		if timeout > 0 {
			lookup.httpClient.SetTimeout(timeout)
		}
	}
}

func NewGeminiLookup(apiKey, model string, opts ...LookupOption) *GeminiLookup {
	httpClient := resty.New().
		SetBaseURL(gemini.DefaultBaseURL).
		SetHeader("Content-Type", "application/json")
	if model == "" {
		model = gemini.DefaultModel
	}

	lookup := &GeminiLookup{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
	}
	for _, opt := range opts {
		opt(lookup)
	}
	return lookup
}

func (lookup *GeminiLookup) IsConfigured() bool {
	return gemini.IsUsableAPIKey(lookup.apiKey)
}

// TranslateWord asks for the Spanish translation of a French word.
// A reply that cannot be decoded returns ErrMalformedResponse.
func (lookup *GeminiLookup) TranslateWord(ctx context.Context, word string) (Translation, error) {
	if !lookup.IsConfigured() {
		return Translation{}, inference.ErrNotConfigured
	}

	text, err := lookup.generate(ctx, translationPrompt(word), gemini.GenerationConfig{
		Temperature:     0.3,
		TopK:            20,
		TopP:            0.8,
		MaxOutputTokens: 512,
	})
	if err != nil {
		return Translation{}, fmt.Errorf("lookup.generate() > %w", err)
	}

	var payload struct {
		Word         string   `json:"word"`
		Translation  string   `json:"translation"`
		PartOfSpeech string   `json:"partOfSpeech"`
		Definition   string   `json:"definition"`
		Examples     []string `json:"examples"`
	}
	if err := json.Unmarshal([]byte(gemini.StripCodeFence(text)), &payload); err != nil {
		slog.Default().Error("Failed to parse translation response",
			"word", word,
			"response", text,
			"error", err)
		return Translation{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if payload.Translation == "" {
		return Translation{}, fmt.Errorf("%w: empty translation for %s", ErrMalformedResponse, word)
	}

	return Translation{
		Word:         word,
		Translation:  payload.Translation,
		PartOfSpeech: payload.PartOfSpeech,
		Definition:   payload.Definition,
		Examples:     payload.Examples,
		Source:       SourceRemote,
	}, nil
}

// CreateFlashcard drafts a study card for a word. Once the lookup is
// configured it always returns a draft; failures produce a fallback draft.
func (lookup *GeminiLookup) CreateFlashcard(ctx context.Context, word string) (FlashcardDraft, error) {
	if !lookup.IsConfigured() {
		return FlashcardDraft{}, inference.ErrNotConfigured
	}

	text, err := lookup.generate(ctx, flashcardPrompt(word), gemini.GenerationConfig{
		Temperature:     0.5,
		TopK:            30,
		TopP:            0.9,
		MaxOutputTokens: 256,
	})
	if err != nil {
		slog.Default().Warn("Failed to create flashcard",
			"word", word,
			"error", err)
		return fallbackFlashcard(word, failedFlashcard), nil
	}

	var draft FlashcardDraft
	if err := json.Unmarshal([]byte(gemini.StripCodeFence(text)), &draft); err != nil || draft.Back == "" {
		slog.Default().Error("Failed to parse flashcard response",
			"word", word,
			"response", text,
			"error", err)
		return fallbackFlashcard(word, UnavailableTranslation), nil
	}
	if draft.Front == "" {
		draft.Front = word
	}
	switch draft.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		draft.Difficulty = DifficultyMedium
	}
	if draft.Category == "" {
		draft.Category = "general"
	}
	draft.Fallback = false
	return draft, nil
}

func (lookup *GeminiLookup) generate(ctx context.Context, prompt string, config gemini.GenerationConfig) (string, error) {
	res, err := lookup.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", lookup.apiKey).
		SetBody(gemini.NewTextRequest(prompt, config)).
		SetResult(&gemini.GenerateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", lookup.model))
	if err != nil {
		return "", &inference.NetworkError{Err: err}
	}
	if res.IsError() {
		return "", &inference.APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}

	body, ok := res.Result().(*gemini.GenerateContentResponse)
	if !ok || body == nil || len(body.Candidates) == 0 {
		return "", fmt.Errorf("%w: %s", inference.ErrUnexpectedResponse, res.String())
	}
	text, ok := body.Candidates[0].Text()
	if !ok {
		return "", fmt.Errorf("%w: candidate has no text part", inference.ErrUnexpectedResponse)
	}
	return text, nil
}

func translationPrompt(word string) string {
	return strings.ReplaceAll(`Traduce la palabra francesa "{word}" al español. Responde ÚNICAMENTE con un JSON válido en este formato exacto:

{
  "word": "{word}",
  "translation": "traducción principal en español",
  "partOfSpeech": "sustantivo/verbo/adjetivo/etc",
  "definition": "definición breve en español",
  "examples": ["ejemplo 1 en francés = traducción", "ejemplo 2 en francés = traducción"]
}

Si la palabra no existe o no es francesa, usa "No encontrado" como traducción.`, "{word}", word)
}

func flashcardPrompt(word string) string {
	return strings.ReplaceAll(`Crea una flashcard para aprender la palabra francesa "{word}". Responde ÚNICAMENTE con un JSON válido en este formato:

{
  "front": "palabra en francés con artículo si aplica",
  "back": "traducción en español + pronunciación [fonética]",
  "hint": "pista útil o mnemotécnica en español",
  "difficulty": "easy/medium/hard",
  "category": "categoría (ej: animales, comida, verbos, etc.)"
}

Haz la flashcard educativa y útil para un estudiante de francés.`, "{word}", word)
}

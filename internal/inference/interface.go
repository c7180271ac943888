package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for the tutor's generative operations
type Client interface {
	GenerateTurn(ctx context.Context, params TurnRequest) (TurnResult, error)
}

// TurnRequest is one user utterance with its conversational context
type TurnRequest struct {
	Message string `json:"message"`
	// Context is a free-text hint describing the current mode or scenario
	Context             string `json:"context,omitempty"`
	CulturalTipsEnabled bool   `json:"cultural_tips_enabled"`
}

// TurnResult is the structured outcome of one generative call
type TurnResult struct {
	IsCorrect  bool        `json:"isCorrect"`
	Response   string      `json:"response"`
	Correction *Correction `json:"correction,omitempty"`
	// CulturalTip is empty when the model did not supply one
	CulturalTip string `json:"culturalTip,omitempty"`
}

// Correction explains a grammatical error in the user's message
type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

const (
	// DefaultMaxRetryAttempts disables automatic retries; callers decide whether to retry.
	DefaultMaxRetryAttempts = 0

	// FallbackResponse is used when the model omitted the response field
	FallbackResponse = "Réponse non disponible"
)

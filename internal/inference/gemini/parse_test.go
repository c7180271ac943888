package gemini

import (
	"testing"

	"github.com/at-ishikawa/polypal/internal/inference"
	"github.com/stretchr/testify/assert"
)

func TestParseTurn(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want inference.TurnResult
	}{
		{
			name: "well-formed JSON with correction and tip",
			raw: `{
  "isCorrect": false,
  "response": "Moi aussi, j'adore la musique!",
  "correction": {
    "original": "J'aime la musique beaucoup",
    "corrected": "J'aime beaucoup la musique",
    "explanation": "El adverbio va después del verbo."
  },
  "culturalTip": "La Fête de la Musique a lieu le 21 juin."
}`,
			want: inference.TurnResult{
				IsCorrect: false,
				Response:  "Moi aussi, j'adore la musique!",
				Correction: &inference.Correction{
					Original:    "J'aime la musique beaucoup",
					Corrected:   "J'aime beaucoup la musique",
					Explanation: "El adverbio va después del verbo.",
				},
				CulturalTip: "La Fête de la Musique a lieu le 21 juin.",
			},
		},
		{
			name: "JSON wrapped in a json code fence",
			raw:  "```json\n" + `{"isCorrect": true, "response": "Très bien!"}` + "\n```",
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "Très bien!",
			},
		},
		{
			name: "JSON wrapped in a bare code fence",
			raw:  "```\n" + `{"isCorrect": true, "response": "Parfait", "culturalTip": "  "}` + "\n```",
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "Parfait",
			},
		},
		{
			name: "missing response falls back to the placeholder",
			raw:  `{"isCorrect": true}`,
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  inference.FallbackResponse,
			},
		},
		{
			name: "missing isCorrect defaults to true",
			raw:  `{"response": "Salut"}`,
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "Salut",
			},
		},
		{
			name: "escaped characters are normalized",
			raw:  `{"isCorrect": true, "response": "Bonjour\\nça va? Il a dit \\\"oui\\\" \\"}`,
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "Bonjour\nça va? Il a dit \"oui\"",
			},
		},
		{
			name: "invalid JSON falls back to field extraction",
			raw:  `{"isCorrect": false, "response": "Je comprends", "correction": {"original": "je suis 20 ans", "corrected": "j'ai 20 ans", "explanation": "On utilise avoir."}, "culturalTip": "Les Français` + "\n",
			want: inference.TurnResult{
				IsCorrect: false,
				Response:  "Je comprends",
				Correction: &inference.Correction{
					Original:    "je suis 20 ans",
					Corrected:   "j'ai 20 ans",
					Explanation: "On utilise avoir.",
				},
			},
		},
		{
			name: "field extraction keeps the embedded response",
			raw:  `Voici: {"response": "X", trailing garbage`,
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "X",
			},
		},
		{
			name: "field extraction ignores an incomplete correction",
			raw:  `{"isCorrect": false, "response": "Bien", "correction": {"original": "a", "corrected": "b"`,
			want: inference.TurnResult{
				IsCorrect: false,
				Response:  "Bien",
			},
		},
		{
			name: "field extraction with a cultural tip",
			raw:  `{"response": "Bonjour!", "culturalTip": "On se fait la bise." ,,}`,
			want: inference.TurnResult{
				IsCorrect:   true,
				Response:    "Bonjour!",
				CulturalTip: "On se fait la bise.",
			},
		},
		{
			name: "response key present but unquoted value",
			raw:  `{"response": 42,`,
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  inference.FallbackResponse,
			},
		},
		{
			name: "plain text becomes the whole response",
			raw:  "Bonjour! Comment allez-vous aujourd'hui?",
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "Bonjour! Comment allez-vous aujourd'hui?",
			},
		},
		{
			name: "empty text",
			raw:  "",
			want: inference.TurnResult{
				IsCorrect: true,
				Response:  "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTurn(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain", text: "Bonjour", want: "Bonjour"},
		{name: "escaped newline", text: `ligne 1\nligne 2`, want: "ligne 1\nligne 2"},
		{name: "escaped quote", text: `il a dit \"non\"`, want: `il a dit "non"`},
		{name: "trailing backslash", text: `C'est fini\`, want: "C'est fini"},
		{name: "trailing backslash with spaces", text: "C'est fini \\  ", want: "C'est fini"},
		{name: "surrounding whitespace", text: "  salut  ", want: "salut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.text))
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no fence", text: ` {"a": 1} `, want: `{"a": 1}`},
		{name: "json fence", text: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "bare fence", text: "```\n{\"a\": 1}\n```\n", want: `{"a": 1}`},
		{name: "unterminated fence", text: "```json\n{\"a\": 1}", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.text))
		})
	}
}

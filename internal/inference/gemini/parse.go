package gemini

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/at-ishikawa/polypal/internal/inference"
)

// parseStage either produces a result or defers to the next stage
type parseStage func(raw string) (inference.TurnResult, bool)

var (
	responsePattern    = regexp.MustCompile(`"response"\s*:\s*"([^"]*)"`)
	isCorrectPattern   = regexp.MustCompile(`"isCorrect"\s*:\s*(true|false)`)
	originalPattern    = regexp.MustCompile(`"correction"\s*:\s*\{[^}]*"original"\s*:\s*"([^"]*)"`)
	correctedPattern   = regexp.MustCompile(`"corrected"\s*:\s*"([^"]*)"`)
	explanationPattern = regexp.MustCompile(`"explanation"\s*:\s*"([^"]*)"`)
	culturalTipPattern = regexp.MustCompile(`"culturalTip"\s*:\s*"([^"]*)"`)

	trailingBackslashPattern = regexp.MustCompile(`\s*\\\s*$`)
)

// ParseTurn turns raw model text into a TurnResult. It never fails:
// strict JSON first, then field extraction, then the raw text itself.
func ParseTurn(raw string) inference.TurnResult {
	for _, stage := range []parseStage{strictStage, regexStage} {
		if result, ok := stage(raw); ok {
			return result
		}
	}
	return rawStage(raw)
}

type structuredResponse struct {
	IsCorrect  *bool  `json:"isCorrect"`
	Response   string `json:"response"`
	Correction *struct {
		Original    string `json:"original"`
		Corrected   string `json:"corrected"`
		Explanation string `json:"explanation"`
	} `json:"correction"`
	CulturalTip string `json:"culturalTip"`
}

func strictStage(raw string) (inference.TurnResult, bool) {
	var parsed structuredResponse
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &parsed); err != nil {
		slog.Default().Error("Failed to parse Gemini response as JSON",
			"response", raw,
			"error", err)
		return inference.TurnResult{}, false
	}

	result := inference.TurnResult{
		IsCorrect: parsed.IsCorrect == nil || *parsed.IsCorrect,
		Response:  inference.FallbackResponse,
	}
	if parsed.Response != "" {
		result.Response = CleanText(parsed.Response)
	}
	if parsed.Correction != nil {
		result.Correction = &inference.Correction{
			Original:    CleanText(parsed.Correction.Original),
			Corrected:   CleanText(parsed.Correction.Corrected),
			Explanation: CleanText(parsed.Correction.Explanation),
		}
	}
	result.CulturalTip = CleanText(parsed.CulturalTip)
	return result, true
}

func regexStage(raw string) (inference.TurnResult, bool) {
	if !strings.Contains(raw, `"response"`) {
		return inference.TurnResult{}, false
	}

	result := inference.TurnResult{
		IsCorrect: true,
		Response:  inference.FallbackResponse,
	}
	if match := responsePattern.FindStringSubmatch(raw); match != nil {
		result.Response = CleanText(match[1])
	}
	if match := isCorrectPattern.FindStringSubmatch(raw); match != nil {
		result.IsCorrect = match[1] == "true"
	}

	original := originalPattern.FindStringSubmatch(raw)
	corrected := correctedPattern.FindStringSubmatch(raw)
	explanation := explanationPattern.FindStringSubmatch(raw)
	if original != nil && corrected != nil && explanation != nil {
		result.Correction = &inference.Correction{
			Original:    CleanText(original[1]),
			Corrected:   CleanText(corrected[1]),
			Explanation: CleanText(explanation[1]),
		}
	}

	if match := culturalTipPattern.FindStringSubmatch(raw); match != nil {
		result.CulturalTip = CleanText(match[1])
	}
	return result, true
}

func rawStage(raw string) inference.TurnResult {
	return inference.TurnResult{
		IsCorrect: true,
		Response:  raw,
	}
}

// StripCodeFence removes a ```json or ``` markdown fence around the payload
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(cleaned, "```json"):
		cleaned = strings.TrimPrefix(cleaned, "```json")
	case strings.HasPrefix(cleaned, "```"):
		cleaned = strings.TrimPrefix(cleaned, "```")
	default:
		return cleaned
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// CleanText normalizes escape sequences the model leaves in string fields
func CleanText(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\"`, `"`)
	text = strings.TrimSuffix(text, `\`)
	text = trailingBackslashPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

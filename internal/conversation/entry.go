package conversation

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Kind selects which payload of an Entry is populated. User entries are
// always KindResponse.
type Kind string

const (
	KindResponse    Kind = "response"
	KindCorrection  Kind = "correction"
	KindCulturalTip Kind = "cultural-tip"
)

type Mode string

const (
	ModeGeneral   Mode = "general"
	ModeScenarios Mode = "scenarios"
	ModeTeacher   Mode = "teacher"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModeGeneral, ModeScenarios, ModeTeacher:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
}

type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

type CulturalTip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Entry is one immutable item of the conversation timeline. Text is set for
// response entries, Correction for correction entries and Tip for cultural
// tip entries.
type Entry struct {
	ID         string       `json:"id"`
	Role       Role         `json:"role"`
	Kind       Kind         `json:"kind"`
	Text       string       `json:"text,omitempty"`
	Correction *Correction  `json:"correction,omitempty"`
	Tip        *CulturalTip `json:"tip,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/polypal/internal/conversation"
	"github.com/at-ishikawa/polypal/internal/flashcard"
)

type ModeFlag conversation.Mode

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	mode, err := conversation.ParseMode(v)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q",
			v, conversation.ModeGeneral, conversation.ModeScenarios, conversation.ModeTeacher)
	}
	*m = ModeFlag(mode)
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

// DeckFlag selects a flashcard deck. The empty value means every deck.
type DeckFlag flashcard.Deck

// Set implements pflag.Value.
func (d *DeckFlag) Set(v string) error {
	switch deck := flashcard.Deck(v); deck {
	case flashcard.DeckBuiltIn, flashcard.DeckPersonal:
		*d = DeckFlag(deck)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, flashcard.DeckBuiltIn, flashcard.DeckPersonal)
	}
	return nil
}

// String implements pflag.Value.
func (d *DeckFlag) String() string {
	if d == nil {
		return ""
	}
	return string(*d)
}

// Type implements pflag.Value.
func (d *DeckFlag) Type() string {
	return "DeckFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
	_ pflag.Value = (*DeckFlag)(nil)
)

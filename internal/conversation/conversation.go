// Package conversation runs tutoring turns and keeps the resulting timeline.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/polypal/internal/inference"
	"github.com/at-ishikawa/polypal/internal/scenario"
	"github.com/google/uuid"
)

const (
	culturalTipTitle = "Consejo Cultural"
	genericFailure   = "Désolé, une erreur s'est produite. Veuillez réessayer."

	generalContext = "Conversation générale"
	teacherContext = "Mode professeur - Focus sur les corrections et explications"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	// ErrTurnInProgress is returned for any change requested while a turn
	// is waiting for the tutor's reply.
	ErrTurnInProgress = errors.New("a turn is already in progress")
	ErrUnknownMode    = errors.New("unknown conversation mode")
)

// SettingsReader exposes the toggles a turn depends on
type SettingsReader interface {
	CulturalTipsEnabled() bool
}

type Scenarios interface {
	Find(id string) (scenario.Scenario, error)
	Introduction(id string, rng *rand.Rand) (string, error)
}

type Conversation struct {
	client    inference.Client
	settings  SettingsReader
	scenarios Scenarios
	newID     func() string
	now       func() time.Time
	rng       *rand.Rand
	logger    *slog.Logger

	mu             sync.Mutex
	entries        []Entry
	pendingEntryID string
	mode           Mode
	scenarioID     string
}

type Option func(*Conversation)

func WithClock(now func() time.Time) Option {
	return func(c *Conversation) {
		c.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Conversation) {
		c.newID = newID
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Conversation) {
		c.rng = rng
	}
}

func New(client inference.Client, settings SettingsReader, scenarios Scenarios, opts ...Option) *Conversation {
	c := &Conversation{
		client:    client,
		settings:  settings,
		scenarios: scenarios,
		newID:     uuid.NewString,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    slog.Default(),
		mode:      ModeGeneral,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit runs one turn. The user entry is appended right away; the tutor's
// entries are appended together once the client returns. A client failure
// becomes a single assistant entry rather than an error, so the returned
// error is only ErrEmptyMessage or ErrTurnInProgress.
func (c *Conversation) Submit(ctx context.Context, text string) ([]Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.pendingEntryID != "" {
		c.mu.Unlock()
		return nil, ErrTurnInProgress
	}
	c.entries = append(c.entries, Entry{
		ID:        c.newID(),
		Role:      RoleUser,
		Kind:      KindResponse,
		Text:      text,
		CreatedAt: c.now(),
	})
	c.pendingEntryID = c.newID()
	request := inference.TurnRequest{
		Message:             text,
		Context:             c.contextLocked(),
		CulturalTipsEnabled: c.settings.CulturalTipsEnabled(),
	}
	c.mu.Unlock()

	result, err := c.client.GenerateTurn(ctx, request)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingEntryID = ""

	if err != nil {
		c.logger.Error("Failed to generate a turn",
			"mode", c.mode,
			"error", err)
		entry := c.failureEntry(err)
		c.entries = append(c.entries, entry)
		return []Entry{entry}, nil
	}

	replies := c.repliesFor(result, request.CulturalTipsEnabled)
	c.entries = append(c.entries, replies...)
	return replies, nil
}

// repliesFor orders the tutor's entries as correction, response, tip
func (c *Conversation) repliesFor(result inference.TurnResult, culturalTipsEnabled bool) []Entry {
	createdAt := c.now()
	replies := make([]Entry, 0, 3)

	if !result.IsCorrect && result.Correction != nil {
		replies = append(replies, Entry{
			ID:   c.newID(),
			Role: RoleAssistant,
			Kind: KindCorrection,
			Correction: &Correction{
				Original:    result.Correction.Original,
				Corrected:   result.Correction.Corrected,
				Explanation: result.Correction.Explanation,
			},
			CreatedAt: createdAt,
		})
	}

	replies = append(replies, Entry{
		ID:        c.newID(),
		Role:      RoleAssistant,
		Kind:      KindResponse,
		Text:      result.Response,
		CreatedAt: createdAt,
	})

	if tip := strings.TrimSpace(result.CulturalTip); culturalTipsEnabled && tip != "" {
		replies = append(replies, Entry{
			ID:   c.newID(),
			Role: RoleAssistant,
			Kind: KindCulturalTip,
			Tip: &CulturalTip{
				Title:   culturalTipTitle,
				Content: tip,
			},
			CreatedAt: createdAt,
		})
	}
	return replies
}

func (c *Conversation) failureEntry(err error) Entry {
	text := genericFailure
	if message := err.Error(); message != "" {
		text = "Erreur: " + message
	}
	return Entry{
		ID:        c.newID(),
		Role:      RoleAssistant,
		Kind:      KindResponse,
		Text:      text,
		CreatedAt: c.now(),
	}
}

// Entries returns a copy of the timeline
func (c *Conversation) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// Pending returns the id reserved for the reply of the turn in flight
func (c *Conversation) Pending() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingEntryID, c.pendingEntryID != ""
}

func (c *Conversation) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Conversation) ScenarioID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scenarioID
}

// SwitchMode changes the mode. Leaving the scenarios mode forgets the
// scenario; entering it without an id keeps the previous one.
func (c *Conversation) SwitchMode(mode Mode, scenarioID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchModeLocked(mode, scenarioID)
}

func (c *Conversation) switchModeLocked(mode Mode, scenarioID string) error {
	if c.pendingEntryID != "" {
		return ErrTurnInProgress
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	switch {
	case mode != ModeScenarios:
		c.scenarioID = ""
	case scenarioID != "":
		if _, err := c.scenarios.Find(scenarioID); err != nil {
			return fmt.Errorf("scenarios.Find() > %w", err)
		}
		c.scenarioID = scenarioID
	}
	c.mode = mode
	return nil
}

// StartScenario switches to a scenario and appends its introduction
func (c *Conversation) StartScenario(scenarioID string) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.switchModeLocked(ModeScenarios, scenarioID); err != nil {
		return Entry{}, err
	}
	introduction, err := c.scenarios.Introduction(scenarioID, c.rng)
	if err != nil {
		return Entry{}, fmt.Errorf("scenarios.Introduction() > %w", err)
	}

	entry := Entry{
		ID:        c.newID(),
		Role:      RoleAssistant,
		Kind:      KindResponse,
		Text:      introduction,
		CreatedAt: c.now(),
	}
	c.entries = append(c.entries, entry)
	return entry, nil
}

func (c *Conversation) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingEntryID != "" {
		return ErrTurnInProgress
	}
	c.entries = nil
	return nil
}

// Context describes the current mode to the tutor
func (c *Conversation) Context() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contextLocked()
}

func (c *Conversation) contextLocked() string {
	switch {
	case c.mode == ModeScenarios && c.scenarioID != "":
		title := c.scenarioID
		if found, err := c.scenarios.Find(c.scenarioID); err == nil {
			title = found.Title
		}
		return "Scénario: " + title
	case c.mode == ModeTeacher:
		return teacherContext
	}
	return generalContext
}

// LatestCorrection returns the most recent correction in the timeline
func (c *Conversation) LatestCorrection() (Correction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Kind == KindCorrection && c.entries[i].Correction != nil {
			return *c.entries[i].Correction, true
		}
	}
	return Correction{}, false
}

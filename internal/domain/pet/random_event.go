package pet

import (
	"strings"
	"time"

	"petverse/internal/domain/rng"
)

type EventTone string

const (
	TonePositive EventTone = "positive"
	ToneNegative EventTone = "negative"
	ToneNeutral  EventTone = "neutral"
)

func (t EventTone) Valid() bool {
	switch t {
	case TonePositive, ToneNegative, ToneNeutral:
		return true
	default:
		return false
	}
}

// EventTemplate descriptions may reference the companion as {name}.
type EventTemplate struct {
	Tone        EventTone `json:"tone"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Effect      Delta     `json:"effect"`
}

// RandomEvent is an immutable record apart from the Read flag.
type RandomEvent struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companion_id"`
	Tone        EventTone `json:"tone"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Effect      Delta     `json:"effect"`
	OccurredAt  time.Time `json:"occurred_at"`
	Read        bool      `json:"read"`
}

type EventResult struct {
	Companion Companion
	Event     *RandomEvent
	Change    Change
}

type EventGenerator struct {
	Rules   EventRules
	Catalog []EventTemplate
}

// Maybe draws one template once Interval has passed since LastActivityUpdate.
func (g EventGenerator) Maybe(c Companion, now time.Time, src rng.Source, newID func() string) EventResult {
	out := EventResult{Companion: c}
	if !c.Alive || len(g.Catalog) == 0 || now.Sub(c.LastActivityUpdate) < g.Rules.Interval {
		return out
	}
	tpl := g.Catalog[src.Intn(len(g.Catalog))]

	next := c.Clone()
	out.Change = next.ApplyDelta(tpl.Effect)
	next.LastActivityUpdate = now
	out.Companion = next
	out.Event = &RandomEvent{
		ID:          newID(),
		CompanionID: c.ID,
		Tone:        tpl.Tone,
		Title:       tpl.Title,
		Description: strings.ReplaceAll(tpl.Description, "{name}", c.Name),
		Effect:      tpl.Effect,
		OccurredAt:  now,
	}
	return out
}

package pet

import (
	"testing"
	"time"

	"petverse/internal/domain/rng"
)

func fixedID(id string) func() string {
	return func() string { return id }
}

func TestEventGeneratorWaitsForInterval(t *testing.T) {
	c := testCompanion()
	g := EventGenerator{Rules: DefaultEventRules(), Catalog: DefaultEventCatalog()}

	res := g.Maybe(c, c.LastActivityUpdate.Add(3*time.Hour+59*time.Minute), rng.NewSequence(0), fixedID("e-1"))
	if res.Event != nil {
		t.Fatalf("expected no event before interval, got %+v", res.Event)
	}
}

func TestEventGeneratorAppliesTemplate(t *testing.T) {
	c := testCompanion()
	c.Vitals.Mood = 95
	g := EventGenerator{
		Rules: DefaultEventRules(),
		Catalog: []EventTemplate{
			{Tone: ToneNeutral, Title: "a", Description: "nothing"},
			{Tone: TonePositive, Title: "b", Description: "{name} smiles", Effect: Delta{Mood: 10, Experience: 5}},
		},
	}
	now := c.LastActivityUpdate.Add(4 * time.Hour)

	res := g.Maybe(c, now, rng.NewSequence(0.75), fixedID("e-1"))
	if res.Event == nil {
		t.Fatalf("expected event")
	}
	if res.Event.ID != "e-1" || res.Event.Title != "b" || res.Event.Read {
		t.Fatalf("unexpected event %+v", res.Event)
	}
	if res.Event.Description != "Mochi smiles" {
		t.Fatalf("expected name substitution, got %q", res.Event.Description)
	}
	if res.Companion.Vitals.Mood != 100 || res.Companion.Experience != 5 {
		t.Fatalf("expected clamped mood 100 and exp 5, got %+v exp=%d", res.Companion.Vitals, res.Companion.Experience)
	}
	if !res.Companion.LastActivityUpdate.Equal(now) {
		t.Fatalf("expected activity timestamp refreshed")
	}
}

func TestEventGeneratorCanKill(t *testing.T) {
	c := testCompanion()
	c.Vitals.Health = 4
	g := EventGenerator{
		Rules:   DefaultEventRules(),
		Catalog: []EventTemplate{{Tone: ToneNegative, Title: "scrape", Effect: Delta{Health: -6}}},
	}

	res := g.Maybe(c, c.LastActivityUpdate.Add(5*time.Hour), rng.NewSequence(0), fixedID("e-1"))
	if !res.Change.Died || res.Companion.Alive || res.Companion.Vitals.Health != 0 {
		t.Fatalf("expected death, got %+v", res.Companion)
	}
	again := g.Maybe(res.Companion, res.Companion.LastActivityUpdate.Add(5*time.Hour), rng.NewSequence(0), fixedID("e-2"))
	if again.Event != nil {
		t.Fatalf("dead companion must not receive events")
	}
}

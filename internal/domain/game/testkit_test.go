package game

import (
	"fmt"
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/rng"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// testEngine draws 0.99 by default: no mutation, no risk tier, no social trigger.
func testEngine(draws ...float64) *Engine {
	if len(draws) == 0 {
		draws = []float64{0.99}
	}
	return NewEngine(DefaultTuning(), rng.NewSequence(draws...), seqIDs())
}

func stateWithCompanion(e *Engine) (State, pet.Companion) {
	s := NewState("owner-1", t0)
	s, c, err := e.CreateCompanion(s, CreateInput{
		Name:        "Mochi",
		Kind:        "cat",
		Description: "an orange cat",
		Personality: pet.PersonalityAmiable,
	}, t0)
	if err != nil {
		panic(err)
	}
	return s, c
}

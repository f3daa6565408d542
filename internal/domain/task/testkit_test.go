package task

import (
	"fmt"
	"time"

	"petverse/internal/domain/pet"
)

var t0 = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func testCompanion() pet.Companion {
	return pet.New(pet.Spec{
		ID:          "c-1",
		Name:        "Mochi",
		Category:    pet.CategoryCreature,
		Personality: pet.PersonalityAmiable,
	}, t0)
}

func testTask(strategy Strategy) Task {
	return Task{
		ID:                      "t-1",
		CompanionID:             "c-1",
		Title:                   "test task",
		Kind:                    KindSpecial,
		Strategy:                strategy,
		Reward:                  pet.Delta{Experience: 10, Mood: -5, Energy: -8},
		CompletionWindowMinutes: 10,
		CreatedAt:               t0,
		ExpiresAt:               t0.Add(time.Hour),
	}
}

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

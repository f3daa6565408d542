package task

import (
	"strings"
	"time"

	"petverse/internal/domain/pet"
)

// Template is a catalog entry a task is instantiated from. Description may
// reference the companion as {name}.
type Template struct {
	Title                   string
	Description             string
	Category                string
	Kind                    Kind
	Strategy                Strategy
	Reward                  pet.Delta
	RiskLevel               RiskLevel
	RiskNote                string
	Keywords                []string
	TimerSeconds            int
	Expiry                  time.Duration
	CompletionWindowMinutes int
}

// Instantiate builds an open task for c from tpl.
func (tpl Template) Instantiate(id string, c pet.Companion, now time.Time) Task {
	return Task{
		ID:                      id,
		CompanionID:             c.ID,
		Title:                   tpl.Title,
		Description:             strings.ReplaceAll(tpl.Description, "{name}", c.Name),
		Category:                tpl.Category,
		Kind:                    tpl.Kind,
		Strategy:                tpl.Strategy,
		Reward:                  tpl.Reward,
		RiskLevel:               tpl.RiskLevel,
		RiskNote:                tpl.RiskNote,
		Keywords:                append([]string(nil), tpl.Keywords...),
		TimerSeconds:            tpl.TimerSeconds,
		CompletionWindowMinutes: tpl.CompletionWindowMinutes,
		CreatedAt:               now,
		ExpiresAt:               now.Add(tpl.Expiry),
	}
}

func DefaultStandardCatalog() []Template {
	return []Template{
		{
			Title: "Quick check-in", Description: "Say hi to {name} and ask how it's doing.",
			Category: "interaction", Kind: KindSpecial, Strategy: StrategyConversational,
			Keywords: []string{"hello", "how"}, Reward: pet.Delta{Experience: 10, Mood: 12, Energy: -3},
			Expiry: 40 * time.Minute, CompletionWindowMinutes: 10,
		},
		{
			Title: "Stretch break", Description: "Stand up and stretch for a minute with {name}.",
			Category: "exercise", Kind: KindSpecial, Strategy: StrategyPhysical,
			Reward: pet.Delta{Experience: 12, Health: 8, Energy: -6},
			Expiry: 30 * time.Minute, CompletionWindowMinutes: 10,
		},
		{
			Title: "Quiet time", Description: "Sit quietly with {name} until the timer ends.",
			Category: "rest", Kind: KindSpecial, Strategy: StrategyTimed, TimerSeconds: 300,
			Reward: pet.Delta{Experience: 15, Energy: 15, Mood: 5},
			Expiry: 45 * time.Minute, CompletionWindowMinutes: 10,
		},
		{
			Title: "Tidy up", Description: "Clean the spot where {name} sleeps.",
			Category: "care", Kind: KindSpecial, Strategy: StrategyImmediate,
			Reward: pet.Delta{Experience: 8, Health: 6, Mood: 6},
			Expiry: 60 * time.Minute, CompletionWindowMinutes: 10,
		},
		{
			Title: "Compliment", Description: "Tell {name} something you like about it.",
			Category: "interaction", Kind: KindSpecial, Strategy: StrategyConversational,
			Keywords: []string{"like"}, Reward: pet.Delta{Experience: 10, Mood: 18},
			Expiry: 30 * time.Minute, CompletionWindowMinutes: 10,
		},
	}
}

func DefaultRiskCatalog() []Template {
	return []Template{
		{
			Title: "Gene experiment", Description: "{name} volunteers for an experiment with unknown results.",
			Category: "other", Kind: KindRisk, Strategy: StrategyImmediate, RiskLevel: RiskExtreme,
			RiskNote: "raises mutation pressure sharply but boosts everything else",
			Reward:   pet.Delta{Experience: 50, Mood: 25, Health: 20, Energy: 35, Mutation: 20},
			Expiry:   20 * time.Minute, CompletionWindowMinutes: 5,
		},
		{
			Title: "Extreme sports", Description: "Take {name} to push its limits.",
			Category: "exercise", Kind: KindRisk, Strategy: StrategyImmediate, RiskLevel: RiskHigh,
			RiskNote: "drains energy but lifts mood and experience",
			Reward:   pet.Delta{Experience: 40, Mood: 45, Health: 8, Energy: -35, Mutation: 5},
			Expiry:   25 * time.Minute, CompletionWindowMinutes: 5,
		},
		{
			Title: "Mystery tonic", Description: "Let {name} try an unlabeled energy tonic.",
			Category: "other", Kind: KindRisk, Strategy: StrategyImmediate, RiskLevel: RiskHigh,
			RiskNote: "lots of energy with possible side effects",
			Reward:   pet.Delta{Experience: 25, Mood: -12, Health: -18, Energy: 65, Mutation: 12},
			Expiry:   15 * time.Minute, CompletionWindowMinutes: 5,
		},
		{
			Title: "Empathy link", Description: "Join {name} in a deep emotional link session.",
			Category: "interaction", Kind: KindRisk, Strategy: StrategyImmediate, RiskLevel: RiskMedium,
			RiskNote: "very satisfying but exhausting",
			Reward:   pet.Delta{Experience: 30, Mood: 55, Health: 3, Energy: -28, Mutation: 4},
			Expiry:   35 * time.Minute, CompletionWindowMinutes: 5,
		},
		{
			Title: "Quantum leap", Description: "{name} attempts to hop between states of being.",
			Category: "other", Kind: KindRisk, Strategy: StrategyImmediate, RiskLevel: RiskExtreme,
			RiskNote: "huge risk and huge reward",
			Reward:   pet.Delta{Experience: 75, Mood: 15, Health: -25, Energy: 25, Mutation: 30},
			Expiry:   10 * time.Minute, CompletionWindowMinutes: 5,
		},
	}
}

// DailyTemplates is the default daily set for a companion of category c.
func DailyTemplates(c pet.Category) []Template {
	care := Template{
		Title: "Feed your companion", Description: "{name} is hungry. Give it something to eat.",
		Reward: pet.Delta{Experience: 10, Mood: 15, Health: 10, Energy: -8},
	}
	switch c {
	case pet.CategoryMechanism:
		care = Template{
			Title: "Recharge", Description: "{name} is running low. Plug it in.",
			Reward: pet.Delta{Experience: 10, Mood: 15, Health: 5, Energy: -5},
		}
	case pet.CategoryFlora:
		care = Template{
			Title: "Water the plant", Description: "{name} looks thirsty. Give it some water.",
			Reward: pet.Delta{Experience: 10, Mood: 15, Health: 10, Energy: -3},
		}
	}
	care.Category = "feeding"
	care.Kind = KindDaily
	care.Strategy = StrategyImmediate
	care.Expiry = 60 * time.Minute
	care.CompletionWindowMinutes = 10

	return []Template{
		care,
		{
			Title: "Chat together", Description: "Talk with {name} and tell it how you feel.",
			Category: "interaction", Kind: KindDaily, Strategy: StrategyConversational,
			Keywords: []string{"like", "happy"}, Reward: pet.Delta{Experience: 15, Mood: 20, Health: 5, Energy: -8},
			Expiry: 45 * time.Minute, CompletionWindowMinutes: 10,
		},
		{
			Title: "Exercise together", Description: "Do 10 squats alongside {name}.",
			Category: "exercise", Kind: KindDaily, Strategy: StrategyPhysical,
			Reward: pet.Delta{Experience: 20, Mood: 8, Health: 15, Energy: -18},
			Expiry: 30 * time.Minute, CompletionWindowMinutes: 10,
		},
	}
}

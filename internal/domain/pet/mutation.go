package pet

import (
	"math"
	"time"

	"petverse/internal/domain/rng"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Weight is the relative selection weight used by cumulative sampling.
func (r Rarity) Weight() int {
	switch r {
	case RarityCommon:
		return 50
	case RarityRare:
		return 25
	case RarityEpic:
		return 15
	case RarityLegendary:
		return 10
	default:
		return 0
	}
}

type MutationKind string

const (
	MutationPhysical   MutationKind = "physical"
	MutationBehavioral MutationKind = "behavioral"
	MutationAbility    MutationKind = "ability"
	MutationAppearance MutationKind = "appearance"
)

// MutationEffects multiply the named vital. Zero means "no effect".
type MutationEffects struct {
	MoodMultiplier   float64 `json:"mood_multiplier,omitempty"`
	EnergyMultiplier float64 `json:"energy_multiplier,omitempty"`
	HealthMultiplier float64 `json:"health_multiplier,omitempty"`
	SpecialAbility   string  `json:"special_ability,omitempty"`
}

type MutationDefinition struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Kind          MutationKind    `json:"kind"`
	Rarity        Rarity          `json:"rarity"`
	Effects       MutationEffects `json:"effects"`
	MinMutation   float64         `json:"min_mutation"`
	Categories    []Category      `json:"categories,omitempty"`
	Personalities []Personality   `json:"personalities,omitempty"`
}

// EligibleFor reports whether c may acquire d right now.
func (d MutationDefinition) EligibleFor(c Companion) bool {
	if c.Vitals.Mutation < d.MinMutation {
		return false
	}
	if len(d.Categories) > 0 && !containsCategory(d.Categories, c.Category) {
		return false
	}
	if len(d.Personalities) > 0 && !containsPersonality(d.Personalities, c.Personality) {
		return false
	}
	return !c.HasMutation(d.Name)
}

type MutationResult struct {
	Companion Companion
	Checked   bool
	Triggered bool
	Applied   *MutationDefinition
}

type MutationEngine struct {
	Rules   MutationRules
	Catalog []MutationDefinition
}

// Check runs at most one roll per CheckInterval, measured from LastMutationCheck.
// The check timestamp advances whenever a roll is made, even when nothing applies.
func (e MutationEngine) Check(c Companion, now time.Time, src rng.Source) MutationResult {
	out := MutationResult{Companion: c}
	if !c.Alive || now.Sub(c.LastMutationCheck) < e.Rules.CheckInterval {
		return out
	}
	out.Checked = true
	out.Companion.LastMutationCheck = now

	if src.Float64() >= e.Chance(c.Vitals.Mutation) {
		return out
	}
	out.Triggered = true

	def, ok := SelectMutation(e.Eligible(c), src)
	if !ok {
		return out
	}
	out.Companion = ApplyMutation(out.Companion, def, e.Rules.Relief)
	out.Applied = &def
	return out
}

func (e MutationEngine) Chance(pressure float64) float64 {
	p := Clamp(pressure) / MaxVital * e.Rules.ChanceScale
	return math.Min(p, e.Rules.ChanceCap)
}

func (e MutationEngine) Eligible(c Companion) []MutationDefinition {
	out := make([]MutationDefinition, 0, len(e.Catalog))
	for _, def := range e.Catalog {
		if def.EligibleFor(c) {
			out = append(out, def)
		}
	}
	return out
}

// SelectMutation picks one definition by cumulative rarity weight.
func SelectMutation(defs []MutationDefinition, src rng.Source) (MutationDefinition, bool) {
	total := 0
	for _, def := range defs {
		total += def.Rarity.Weight()
	}
	if total <= 0 {
		return MutationDefinition{}, false
	}
	target := src.Float64() * float64(total)
	cumulative := 0.0
	for _, def := range defs {
		w := def.Rarity.Weight()
		if w <= 0 {
			continue
		}
		cumulative += float64(w)
		if target < cumulative {
			return def, true
		}
	}
	for i := len(defs) - 1; i >= 0; i-- {
		if defs[i].Rarity.Weight() > 0 {
			return defs[i], true
		}
	}
	return MutationDefinition{}, false
}

// ApplyMutation records the label, scales the affected vitals and discharges relief
// points of mutation pressure.
func ApplyMutation(c Companion, def MutationDefinition, relief float64) Companion {
	if !c.AddMutation(def.Name) {
		return c
	}
	if m := def.Effects.MoodMultiplier; m > 0 {
		c.Vitals.Mood = Clamp(c.Vitals.Mood * m)
	}
	if m := def.Effects.EnergyMultiplier; m > 0 {
		c.Vitals.Energy = Clamp(c.Vitals.Energy * m)
	}
	if m := def.Effects.HealthMultiplier; m > 0 {
		c.Vitals.Health = Clamp(c.Vitals.Health * m)
	}
	c.Vitals.Mutation = Clamp(c.Vitals.Mutation - relief)
	if c.Vitals.Health <= MinVital {
		c.MarkDead()
	}
	return c
}

func containsCategory(list []Category, v Category) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsPersonality(list []Personality, v Personality) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

package pet

import (
	"errors"
	"math"
	"strings"
	"time"
)

var ErrCompanionDead = errors.New("companion is no longer alive")

const (
	MinVital = 0.0
	MaxVital = 100.0

	DefaultHealth   = 100.0
	DefaultMood     = 80.0
	DefaultEnergy   = 100.0
	DefaultMutation = 0.0

	ExperiencePerLevel = 100
)

type Spec struct {
	ID           string
	Name         string
	Kind         string
	Description  string
	Category     Category
	Personality  Personality
	SpecialNeeds []string
	Activity     string
}

// New returns a live companion with default vitals and every timestamp set to now.
func New(spec Spec, now time.Time) Companion {
	return Companion{
		ID:           spec.ID,
		Name:         spec.Name,
		Kind:         spec.Kind,
		Description:  spec.Description,
		Category:     spec.Category,
		Personality:  spec.Personality,
		SpecialNeeds: append([]string(nil), spec.SpecialNeeds...),
		Vitals: Vitals{
			Health:   DefaultHealth,
			Mood:     DefaultMood,
			Energy:   DefaultEnergy,
			Mutation: DefaultMutation,
		},
		Alive:              true,
		Mutations:          []string{},
		CurrentActivity:    spec.Activity,
		CreatedAt:          now,
		LastInteraction:    now,
		LastDecayAt:        now,
		LastMutationCheck:  now,
		LastActivityUpdate: now,
		LastProactiveAt:    now,
	}
}

func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/ExperiencePerLevel + 1
}

func (c Companion) Level() int {
	return LevelFor(c.Experience)
}

// ApplyDelta adds d to the vitals, clamps them, and marks the companion dead when
// health reaches zero. A dead companion is left untouched.
func (c *Companion) ApplyDelta(d Delta) Change {
	before := c.Level()
	if !c.Alive {
		return Change{LevelBefore: before, LevelAfter: before}
	}
	c.Vitals.Health = Clamp(c.Vitals.Health + d.Health)
	c.Vitals.Mood = Clamp(c.Vitals.Mood + d.Mood)
	c.Vitals.Energy = Clamp(c.Vitals.Energy + d.Energy)
	c.Vitals.Mutation = Clamp(c.Vitals.Mutation + d.Mutation)
	c.Experience += d.Experience
	if c.Experience < 0 {
		c.Experience = 0
	}
	out := Change{LevelBefore: before, LevelAfter: c.Level()}
	if c.Vitals.Health <= MinVital {
		c.MarkDead()
		out.Died = true
	}
	return out
}

func (c *Companion) MarkDead() {
	c.Vitals.Health = MinVital
	c.Alive = false
	c.Rest = nil
}

func (c Companion) HasMutation(label string) bool {
	for _, m := range c.Mutations {
		if strings.EqualFold(m, label) {
			return true
		}
	}
	return false
}

// AddMutation appends label unless it is already held.
func (c *Companion) AddMutation(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || c.HasMutation(label) {
		return false
	}
	c.Mutations = append(c.Mutations, label)
	return true
}

func (c Companion) Resting(now time.Time) bool {
	return c.Rest != nil && now.Before(c.Rest.EndsAt())
}

// Clone returns a copy that shares no slices or pointers with c.
func (c Companion) Clone() Companion {
	out := c
	out.SpecialNeeds = append([]string(nil), c.SpecialNeeds...)
	out.Mutations = append([]string{}, c.Mutations...)
	if c.Rest != nil {
		rest := *c.Rest
		out.Rest = &rest
	}
	return out
}

func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinVital
	}
	if v < MinVital {
		return MinVital
	}
	if v > MaxVital {
		return MaxVital
	}
	return v
}

// Rounded returns the vitals rounded to whole points for display.
func (v Vitals) Rounded() Vitals {
	return Vitals{
		Health:   math.Round(v.Health),
		Mood:     math.Round(v.Mood),
		Energy:   math.Round(v.Energy),
		Mutation: math.Round(v.Mutation),
	}
}

// MoodState labels the companion's overall condition for status output.
func MoodState(v Vitals) string {
	switch {
	case v.Health < 30:
		return "anxious"
	case v.Energy < 20:
		return "tired"
	case v.Mood < 20:
		return "lonely"
	case v.Mood < 40:
		return "sad"
	case v.Mood >= 90 && v.Energy >= 70:
		return "excited"
	case v.Mood >= 60:
		return "happy"
	default:
		return "neutral"
	}
}

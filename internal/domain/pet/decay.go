package pet

import (
	"math"
	"time"
)

type DecayResult struct {
	Companion Companion
	Delta     Delta
	Died      bool
}

type DecayProcessor struct {
	Rules DecayRules
}

// Apply drains energy and mood linearly over elapsed. Health drains only for the
// part of the window spent with mood or energy under the low threshold. Callers
// own the "last processed" mark and must not replay a window.
func (p DecayProcessor) Apply(c Companion, elapsed time.Duration) DecayResult {
	out := DecayResult{Companion: c}
	if !c.Alive || elapsed <= 0 {
		return out
	}
	hours := elapsed.Hours()
	rules := p.Rules

	energyDrain := rules.EnergyPerHour * hours
	moodDrain := rules.MoodPerHour * hours

	lowHours := hours - math.Min(
		hoursUntilBelow(c.Vitals.Energy, rules.EnergyPerHour, rules.LowThreshold),
		hoursUntilBelow(c.Vitals.Mood, rules.MoodPerHour, rules.LowThreshold),
	)
	healthDrain := 0.0
	if lowHours > 0 {
		healthDrain = rules.HealthPerHour * lowHours
	}

	out.Delta = Delta{
		Energy: -energyDrain,
		Mood:   -moodDrain,
		Health: -healthDrain,
	}
	change := out.Companion.ApplyDelta(out.Delta)
	out.Died = change.Died
	return out
}

// hoursUntilBelow returns how long a vital draining at rate stays at or above
// threshold. Already-low vitals return zero; a non-draining vital never crosses.
func hoursUntilBelow(v, rate, threshold float64) float64 {
	if v < threshold {
		return 0
	}
	if rate <= 0 {
		return math.Inf(1)
	}
	return (v - threshold) / rate
}

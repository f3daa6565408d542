package pet

import (
	"time"

	"petverse/internal/domain/rng"
)

type Trigger string

const (
	TriggerLonely   Trigger = "lonely"
	TriggerTired    Trigger = "tired"
	TriggerUnwell   Trigger = "unwell"
	TriggerConfused Trigger = "confused"
	TriggerSocial   Trigger = "social"
)

type InteractionResult struct {
	Companion   Companion
	Trigger     Trigger
	Fired       bool
	RestExpired bool
}

type InteractionScheduler struct {
	Rules InteractionRules
}

// Evaluate decides whether c reaches out to its owner at now. Conditions are
// checked in priority order and the first match wins; the social draw is only
// taken when none match.
func (s InteractionScheduler) Evaluate(c Companion, now time.Time, src rng.Source) InteractionResult {
	out := InteractionResult{Companion: c}
	if !c.Alive {
		return out
	}
	if c.Rest != nil {
		if c.Resting(now) {
			return out
		}
		next := c.Clone()
		next.Rest = nil
		out.Companion = next
		out.RestExpired = true
	}

	profile, ok := s.Rules.Profiles[c.Personality]
	if !ok || !profile.CanInitiate {
		return out
	}
	if now.Sub(c.LastProactiveAt).Hours() < profile.MinHours*profile.Multiplier {
		return out
	}

	trigger, ok := s.trigger(c.Vitals, src)
	if !ok {
		return out
	}
	out.Companion.LastProactiveAt = now
	out.Trigger = trigger
	out.Fired = true
	return out
}

func (s InteractionScheduler) trigger(v Vitals, src rng.Source) (Trigger, bool) {
	switch {
	case v.Mood < s.Rules.LonelyBelow:
		return TriggerLonely, true
	case v.Energy < s.Rules.TiredBelow:
		return TriggerTired, true
	case v.Health < s.Rules.UnwellBelow:
		return TriggerUnwell, true
	case v.Mutation > s.Rules.ConfusedAbove:
		return TriggerConfused, true
	}
	if src.Float64() < s.Rules.SocialChance {
		return TriggerSocial, true
	}
	return "", false
}

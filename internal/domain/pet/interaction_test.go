package pet

import (
	"testing"
	"time"

	"petverse/internal/domain/rng"
)

func scheduler() InteractionScheduler {
	return InteractionScheduler{Rules: DefaultInteractionRules()}
}

func TestInteractionNeverFiresForEnigmatic(t *testing.T) {
	c := testCompanion()
	c.Personality = PersonalityEnigmatic
	c.Vitals = Vitals{Health: 80, Mood: 15, Energy: 50}

	for _, hours := range []int{1, 24, 24 * 30, 24 * 365} {
		res := scheduler().Evaluate(c, c.LastProactiveAt.Add(time.Duration(hours)*time.Hour), rng.NewSequence(0))
		if res.Fired {
			t.Fatalf("enigmatic companion fired after %dh: %+v", hours, res)
		}
	}
}

func TestInteractionPriorityLonelyBeforeTired(t *testing.T) {
	c := testCompanion()
	c.Vitals.Mood = 10
	c.Vitals.Energy = 5
	src := rng.NewSequence(0)

	res := scheduler().Evaluate(c, c.LastProactiveAt.Add(10*time.Hour), src)
	if !res.Fired || res.Trigger != TriggerLonely {
		t.Fatalf("expected lonely, got %+v", res)
	}
	if src.Consumed() != 0 {
		t.Fatalf("matched condition must not draw, consumed %d", src.Consumed())
	}
}

func TestInteractionRespectsPersonalityInterval(t *testing.T) {
	c := testCompanion()
	c.Personality = PersonalityReserved // 6h * 1.5
	c.Vitals.Mood = 5

	if res := scheduler().Evaluate(c, c.LastProactiveAt.Add(8*time.Hour+59*time.Minute), rng.NewSequence(0)); res.Fired {
		t.Fatalf("expected no trigger before 9h")
	}
	now := c.LastProactiveAt.Add(9 * time.Hour)
	res := scheduler().Evaluate(c, now, rng.NewSequence(0))
	if !res.Fired {
		t.Fatalf("expected trigger at 9h")
	}
	if !res.Companion.LastProactiveAt.Equal(now) {
		t.Fatalf("expected last proactive stamped")
	}
}

func TestInteractionSocialDraw(t *testing.T) {
	c := testCompanion()
	now := c.LastProactiveAt.Add(5 * time.Hour)

	if res := scheduler().Evaluate(c, now, rng.NewSequence(0.05)); !res.Fired || res.Trigger != TriggerSocial {
		t.Fatalf("expected social trigger, got %+v", res)
	}
	res := scheduler().Evaluate(c, now, rng.NewSequence(0.5))
	if res.Fired {
		t.Fatalf("expected no trigger on failed draw")
	}
	if !res.Companion.LastProactiveAt.Equal(c.LastProactiveAt) {
		t.Fatalf("timestamp must not move without a trigger")
	}
}

func TestInteractionSuppressedWhileResting(t *testing.T) {
	c := testCompanion()
	c.Vitals.Mood = 5
	c.Rest = &RestWindow{StartedAt: c.CreatedAt.Add(4 * time.Hour), Minutes: 60}

	res := scheduler().Evaluate(c, c.CreatedAt.Add(4*time.Hour+30*time.Minute), rng.NewSequence(0))
	if res.Fired || res.RestExpired {
		t.Fatalf("expected suppression while resting, got %+v", res)
	}

	res = scheduler().Evaluate(c, c.CreatedAt.Add(5*time.Hour), rng.NewSequence(0))
	if !res.RestExpired || res.Companion.Rest != nil {
		t.Fatalf("expected rest window to expire, got %+v", res)
	}
	if !res.Fired || res.Trigger != TriggerLonely {
		t.Fatalf("expected evaluation to proceed after rest, got %+v", res)
	}
	if c.Rest == nil {
		t.Fatalf("input companion must keep its rest window")
	}
}

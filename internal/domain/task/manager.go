package task

import (
	"time"

	"petverse/internal/domain/pet"
)

// Outcome is the result of a successful start or completion.
type Outcome struct {
	Task      Task
	Companion pet.Companion
	Change    pet.Change
	Timer     *Timer
}

type Manager struct {
	Rules Rules
}

// Start marks t as started. Timed tasks also begin their countdown in timers.
func (m Manager) Start(t Task, c pet.Companion, timers Timers, now time.Time) (Outcome, error) {
	if !c.Alive {
		return Outcome{}, fail(FailureCompanionDead, "%s can no longer take on tasks", c.Name)
	}
	if t.Completed {
		return Outcome{}, fail(FailureAlreadyCompleted, "task %q is already completed", t.Title)
	}
	if t.Expired || t.PastExpiry(now) {
		return Outcome{}, fail(FailureExpired, "task %q has expired", t.Title)
	}
	if t.Started {
		return Outcome{}, fail(FailureAlreadyStarted, "task %q is already started", t.Title)
	}

	next := t.Clone()
	next.Started = true
	startedAt := now
	next.StartedAt = &startedAt
	out := Outcome{Task: next, Companion: c}
	if next.Strategy == StrategyTimed {
		timer := timers.Start(next.ID, next.TimerSeconds, m.window(next), now)
		out.Timer = &timer
	}
	return out, nil
}

// AttemptComplete validates evidence against the task's strategy and, only on
// success, applies the whole reward and releases any timer. On failure neither
// the task, the companion nor the timers are touched.
func (m Manager) AttemptComplete(t Task, c pet.Companion, timers Timers, ev Evidence, now time.Time) (Outcome, error) {
	if !c.Alive {
		return Outcome{}, fail(FailureCompanionDead, "%s is no longer alive", c.Name)
	}
	if t.Completed {
		return Outcome{}, fail(FailureAlreadyCompleted, "task %q is already completed", t.Title)
	}
	if t.Expired || t.PastExpiry(now) {
		return Outcome{}, fail(FailureExpired, "task %q has expired", t.Title)
	}
	if f := m.check(t, timers, ev, now); f != nil {
		return Outcome{}, f
	}

	next := t.Clone()
	next.Completed = true
	completedAt := now
	next.CompletedAt = &completedAt

	companion := c.Clone()
	change := companion.ApplyDelta(t.Reward)
	companion.LastInteraction = now
	timers.Release(t.ID)

	return Outcome{Task: next, Companion: companion, Change: change}, nil
}

func (m Manager) check(t Task, timers Timers, ev Evidence, now time.Time) *Failure {
	switch t.Strategy {
	case StrategyImmediate:
		return nil
	case StrategyPhysical:
		if !ev.Confirmed {
			return fail(FailureNotConfirmed, "confirm that %q was done", t.Title)
		}
		return nil
	case StrategyConversational:
		if missing := t.MissingKeywords(ev.Text); len(missing) > 0 {
			return missingKeywords(missing)
		}
		return nil
	case StrategyTimed:
		p, ok := timers.Progress(t.ID, now)
		if !ok {
			return fail(FailureTimerNotStarted, "start the timer for %q first", t.Title)
		}
		if !p.Complete {
			return fail(FailureTimerRunning, "timer still running, %s remaining", p.Remaining.Round(time.Second))
		}
		if !p.CanComplete {
			return fail(FailureMissedWindow, "missed the completion window for %q", t.Title)
		}
		return nil
	default:
		return fail(FailureUnknownStrategy, "unknown completion strategy %q", t.Strategy)
	}
}

func (m Manager) window(t Task) time.Duration {
	if t.CompletionWindowMinutes > 0 {
		return t.CompletionWindow()
	}
	if m.Rules.CompletionWindow > 0 {
		return m.Rules.CompletionWindow
	}
	return DefaultCompletionWindow
}

package task

import (
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/rng"
)

type Planner struct {
	Rules    Rules
	Standard []Template
	Risk     []Template
}

// SweepExpirations marks open tasks past their expiry as expired. It returns the
// updated list and the tasks that expired during this call.
func (p Planner) SweepExpirations(tasks []Task, now time.Time) ([]Task, []Task) {
	out := make([]Task, len(tasks))
	var expired []Task
	for i, t := range tasks {
		out[i] = t
		if t.Open() && t.PastExpiry(now) {
			next := t.Clone()
			next.Expired = true
			out[i] = next
			expired = append(expired, next)
		}
	}
	return out, expired
}

// Prune drops expired tasks and all but the newest keepCompleted completed
// tasks, preserving order. It returns the kept tasks and the dropped ids.
func Prune(tasks []Task, keepCompleted int) ([]Task, []string) {
	keep := make([]bool, len(tasks))
	completed := 0
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		switch {
		case t.Expired:
		case t.Completed:
			if completed < keepCompleted {
				keep[i] = true
			}
			completed++
		default:
			keep[i] = true
		}
	}
	out := make([]Task, 0, len(tasks))
	var dropped []string
	for i, t := range tasks {
		if keep[i] {
			out = append(out, t)
		} else {
			dropped = append(dropped, t.ID)
		}
	}
	return out, dropped
}

func OpenCount(tasks []Task, companionID string) int {
	n := 0
	for _, t := range tasks {
		if t.CompanionID == companionID && t.Open() {
			n++
		}
	}
	return n
}

// Due reports whether the generation cadence has elapsed since last.
func (p Planner) Due(last, now time.Time) bool {
	return last.IsZero() || now.Sub(last) >= p.Rules.GenerationInterval
}

// MaybeGenerate creates at most one task for c when the cadence is due and the
// open set is below the floor. The risk tier is drawn before the template. The
// bool reports whether the cadence was due so callers can advance their mark.
func (p Planner) MaybeGenerate(tasks []Task, c pet.Companion, last, now time.Time, src rng.Source, newID func() string) (*Task, bool) {
	if !c.Alive || !p.Due(last, now) {
		return nil, false
	}
	if OpenCount(tasks, c.ID) >= p.Rules.OpenFloor {
		return nil, true
	}
	catalog := p.Standard
	if len(p.Risk) > 0 && src.Float64() < p.Rules.RiskChance {
		catalog = p.Risk
	}
	if len(catalog) == 0 {
		return nil, true
	}
	tpl := catalog[src.Intn(len(catalog))]
	t := tpl.Instantiate(newID(), c, now)
	return &t, true
}

// ResetDaily drops c's unfinished daily tasks and issues a fresh daily set.
func (p Planner) ResetDaily(tasks []Task, c pet.Companion, now time.Time, newID func() string) ([]Task, []Task) {
	out := make([]Task, 0, len(tasks)+3)
	for _, t := range tasks {
		if t.CompanionID == c.ID && t.Kind == KindDaily && !t.Completed {
			continue
		}
		out = append(out, t)
	}
	created := make([]Task, 0, 3)
	for _, tpl := range DailyTemplates(c.Category) {
		created = append(created, tpl.Instantiate(newID(), c, now))
	}
	return append(out, created...), created
}

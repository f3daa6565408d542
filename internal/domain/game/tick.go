package game

import (
	"fmt"
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

// TickReport counts what one tick did.
type TickReport struct {
	Companions     int `json:"companions"`
	Deaths         int `json:"deaths"`
	Mutations      int `json:"mutations"`
	Events         int `json:"events"`
	Interactions   int `json:"interactions"`
	TimersFinished int `json:"timers_finished"`
	TasksExpired   int `json:"tasks_expired"`
	TasksGenerated int `json:"tasks_generated"`
}

type TickResult struct {
	State    State
	Requests []NarrativeRequest
	Report   TickReport
}

// Tick runs one maintenance pass: per companion decay, mutation check, random
// event and proactive interaction, then the timer sweep, task expiration and
// pruning, and task generation. Each companion is processed on its own copy so one dead or
// degenerate companion cannot affect the others.
func (e *Engine) Tick(s State, now time.Time) TickResult {
	next := s.Clone()
	res := TickResult{}

	for i := range next.Companions {
		next.Companions[i] = e.tickCompanion(&next, next.Companions[i], now, &res)
		res.Report.Companions++
	}

	for _, id := range next.Timers.Sweep(now) {
		res.Report.TimersFinished++
		companionID := ""
		title := id
		if j := next.TaskIndex(id); j >= 0 {
			companionID = next.Tasks[j].CompanionID
			title = next.Tasks[j].Title
		}
		e.log(&next, companionID, LogAction, fmt.Sprintf("Timer for %q finished", title), now)
	}

	tasks, expired := e.planner().SweepExpirations(next.Tasks, now)
	next.Tasks = tasks
	for _, t := range expired {
		res.Report.TasksExpired++
		e.log(&next, t.CompanionID, LogStatusChange, fmt.Sprintf("Task %q expired", t.Title), now)
	}
	kept, dropped := task.Prune(next.Tasks, MaxCompletedTasks)
	next.Tasks = kept
	for _, id := range dropped {
		next.Timers.Release(id)
	}

	if active, ok := next.Active(); ok {
		created, due := e.planner().MaybeGenerate(next.Tasks, active, next.LastGeneratedAt, now, e.Rand, e.NewID)
		if due {
			next.LastGeneratedAt = now
		}
		if created != nil {
			next.Tasks = append(next.Tasks, *created)
			res.Report.TasksGenerated++
			e.log(&next, active.ID, LogAction, fmt.Sprintf("New task: %s", created.Title), now)
		}
	}

	e.touch(&next, now)
	res.State = next
	return res
}

func (e *Engine) tickCompanion(s *State, c pet.Companion, now time.Time, res *TickResult) pet.Companion {
	if !c.Alive {
		return c
	}

	if elapsed := now.Sub(c.LastDecayAt); elapsed > 0 {
		decayed := e.decay().Apply(c, elapsed)
		c = decayed.Companion
		c.LastDecayAt = now
		if decayed.Died {
			return e.died(s, c, now, res)
		}
	}

	mut := e.mutation().Check(c, now, e.Rand)
	c = mut.Companion
	if mut.Applied != nil {
		res.Report.Mutations++
		e.log(s, c.ID, LogEvent, pet.MutationNote(c, *mut.Applied), now)
		if !c.Alive {
			return e.died(s, c, now, res)
		}
	}

	ev := e.events().Maybe(c, now, e.Rand, e.NewID)
	c = ev.Companion
	if ev.Event != nil {
		res.Report.Events++
		s.appendEvent(*ev.Event)
		e.log(s, c.ID, LogEvent, fmt.Sprintf("%s: %s", ev.Event.Title, ev.Event.Description), now)
		if ev.Change.LeveledUp() {
			e.log(s, c.ID, LogStatusChange, pet.LevelUpNote(c, ev.Change.LevelAfter), now)
		}
		if ev.Change.Died {
			return e.died(s, c, now, res)
		}
		c.CurrentActivity = pet.ActivityFallback(c)
		res.Requests = append(res.Requests, NarrativeRequest{
			Kind:        NarrativeActivity,
			CompanionID: c.ID,
			Companion:   c.Clone(),
			Fallback:    c.CurrentActivity,
		})
	}

	in := e.scheduler().Evaluate(c, now, e.Rand)
	c = in.Companion
	if in.RestExpired {
		e.log(s, c.ID, LogStatusChange, fmt.Sprintf("%s woke up", c.Name), now)
	}
	if in.Fired {
		res.Report.Interactions++
		conv := Conversation{
			ID:          e.NewID(),
			CompanionID: c.ID,
			Role:        RoleCompanion,
			Content:     pet.ProactiveFallback(c, in.Trigger),
			Action:      pet.BodyAction(c.Personality, e.Rand),
			Initiated:   true,
			Trigger:     in.Trigger,
			CreatedAt:   now,
		}
		s.appendConversation(conv)
		e.log(s, c.ID, LogAction, fmt.Sprintf("%s reached out (%s)", c.Name, in.Trigger), now)
		res.Requests = append(res.Requests, NarrativeRequest{
			Kind:           NarrativeProactive,
			CompanionID:    c.ID,
			Companion:      c.Clone(),
			ConversationID: conv.ID,
			Trigger:        in.Trigger,
			Fallback:       conv.Content,
		})
	}
	return c
}

func (e *Engine) died(s *State, c pet.Companion, now time.Time, res *TickResult) pet.Companion {
	res.Report.Deaths++
	e.log(s, c.ID, LogStatusChange, pet.DeathNote(c), now)
	return c
}

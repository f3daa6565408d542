package game

import (
	"fmt"
	"strings"
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

type CreateInput struct {
	Name        string
	Kind        string
	Description string
	Labels      []string
	Personality pet.Personality
}

// CreateCompanion adds a companion, makes it active and issues its daily tasks.
// Capacity is checked before anything changes.
func (e *Engine) CreateCompanion(s State, in CreateInput, now time.Time) (State, pet.Companion, error) {
	limit := e.Tuning.MaxCompanions
	if limit <= 0 {
		limit = DefaultMaxCompanions
	}
	if len(s.Companions) >= limit {
		return s, pet.Companion{}, ErrCapacityExceeded
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return s, pet.Companion{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	personality := in.Personality
	if personality == "" {
		all := pet.Personalities()
		personality = all[e.Rand.Intn(len(all))]
	} else if !personality.Valid() {
		return s, pet.Companion{}, fmt.Errorf("%w: unknown personality %q", ErrInvalidInput, personality)
	}

	category := pet.CategoryFromLabels(append(append([]string{}, in.Labels...), in.Kind), in.Description)
	c := pet.New(pet.Spec{
		ID:           e.NewID(),
		Name:         name,
		Kind:         in.Kind,
		Description:  in.Description,
		Category:     category,
		Personality:  personality,
		SpecialNeeds: pet.SpecialNeeds(category),
		Activity:     "settling in",
	}, now)

	next := s.Clone()
	next.Companions = append(next.Companions, c)
	next.ActiveCompanionID = c.ID
	next.Tasks, _ = e.planner().ResetDaily(next.Tasks, c, now, e.NewID)
	e.log(&next, c.ID, LogStatusChange, fmt.Sprintf("%s joined as a %s %s", c.Name, c.Personality, c.Category), now)
	e.touch(&next, now)
	return next, c, nil
}

func (e *Engine) SwitchActive(s State, companionID string, now time.Time) (State, error) {
	if s.CompanionIndex(companionID) < 0 {
		return s, ErrCompanionNotFound
	}
	next := s.Clone()
	next.ActiveCompanionID = companionID
	e.touch(&next, now)
	return next, nil
}

// RemoveCompanion hard-deletes a companion with its tasks, timers,
// conversations and events. If it was active the first remaining companion
// becomes active.
func (e *Engine) RemoveCompanion(s State, companionID string, now time.Time) (State, error) {
	i := s.CompanionIndex(companionID)
	if i < 0 {
		return s, ErrCompanionNotFound
	}
	next := s.Clone()
	removed := next.Companions[i]
	next.Companions = append(next.Companions[:i], next.Companions[i+1:]...)

	tasks := next.Tasks[:0]
	for _, t := range next.Tasks {
		if t.CompanionID == companionID {
			next.Timers.Release(t.ID)
			continue
		}
		tasks = append(tasks, t)
	}
	next.Tasks = tasks

	convs := next.Conversations[:0]
	for _, c := range next.Conversations {
		if c.CompanionID != companionID {
			convs = append(convs, c)
		}
	}
	next.Conversations = convs

	events := next.Events[:0]
	for _, ev := range next.Events {
		if ev.CompanionID != companionID {
			events = append(events, ev)
		}
	}
	next.Events = events

	if next.ActiveCompanionID == companionID {
		next.ActiveCompanionID = ""
		if len(next.Companions) > 0 {
			next.ActiveCompanionID = next.Companions[0].ID
		}
	}
	e.log(&next, "", LogStatusChange, fmt.Sprintf("%s was released", removed.Name), now)
	e.touch(&next, now)
	return next, nil
}

type MessageResult struct {
	State   State
	User    Conversation
	Reply   Conversation
	Actions []pet.DialogueAction
	Change  pet.Change
	Request NarrativeRequest
}

// SendMessage records the owner's message to the active companion, applies any
// care actions it describes and writes a fallback reply.
func (e *Engine) SendMessage(s State, text string, now time.Time) (MessageResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return MessageResult{State: s}, fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}
	active, ok := s.Active()
	if !ok {
		return MessageResult{State: s}, ErrNoActiveCompanion
	}
	next := s.Clone()
	i := next.CompanionIndex(active.ID)

	user := Conversation{
		ID:          e.NewID(),
		CompanionID: active.ID,
		Role:        RoleUser,
		Content:     text,
		CreatedAt:   now,
	}
	next.appendConversation(user)

	out := MessageResult{}
	c := active
	if active.Alive {
		dr := pet.ApplyDialogue(active, text, now)
		c = dr.Companion
		out.Actions = dr.Actions
		out.Change = dr.Change
		for _, a := range dr.Actions {
			e.log(&next, c.ID, LogAction, fmt.Sprintf("%s %s", c.Name, a.Description), now)
		}
		if dr.Change.LeveledUp() {
			e.log(&next, c.ID, LogStatusChange, pet.LevelUpNote(c, dr.Change.LevelAfter), now)
		}
		next.Companions[i] = c
	}

	reply := Conversation{
		ID:          e.NewID(),
		CompanionID: c.ID,
		Role:        RoleCompanion,
		Content:     pet.ReplyFallback(c),
		CreatedAt:   now,
	}
	if c.Alive {
		reply.Action = pet.BodyAction(c.Personality, e.Rand)
	} else {
		reply.Content = pet.DeathNote(c)
	}
	next.appendConversation(reply)
	e.touch(&next, now)

	out.State = next
	out.User = user
	out.Reply = reply
	if c.Alive {
		out.Request = NarrativeRequest{
			Kind:           NarrativeReply,
			CompanionID:    c.ID,
			Companion:      c.Clone(),
			ConversationID: reply.ID,
			Message:        text,
			Fallback:       reply.Content,
		}
	}
	return out, nil
}

func (e *Engine) taskAndCompanion(s State, taskID string) (int, int, error) {
	ti := s.TaskIndex(taskID)
	if ti < 0 {
		return -1, -1, task.ErrTaskNotFound
	}
	ci := s.CompanionIndex(s.Tasks[ti].CompanionID)
	if ci < 0 {
		return -1, -1, ErrCompanionNotFound
	}
	return ti, ci, nil
}

// StartTask returns a *task.Failure error on a rejected precondition; the
// input state is then returned unchanged.
func (e *Engine) StartTask(s State, taskID string, now time.Time) (State, task.Outcome, error) {
	ti, ci, err := e.taskAndCompanion(s, taskID)
	if err != nil {
		return s, task.Outcome{}, err
	}
	timers := s.Timers.Clone()
	out, err := e.manager().Start(s.Tasks[ti], s.Companions[ci], timers, now)
	if err != nil {
		return s, task.Outcome{}, err
	}
	next := s.Clone()
	next.Tasks[ti] = out.Task
	next.Timers = timers
	e.log(&next, out.Task.CompanionID, LogAction, fmt.Sprintf("Started task %q", out.Task.Title), now)
	e.touch(&next, now)
	return next, out, nil
}

// CompleteTask validates evidence and applies the reward. Failures leave the
// state untouched.
func (e *Engine) CompleteTask(s State, taskID string, ev task.Evidence, now time.Time) (State, task.Outcome, error) {
	ti, ci, err := e.taskAndCompanion(s, taskID)
	if err != nil {
		return s, task.Outcome{}, err
	}
	timers := s.Timers.Clone()
	out, err := e.manager().AttemptComplete(s.Tasks[ti], s.Companions[ci], timers, ev, now)
	if err != nil {
		return s, task.Outcome{}, err
	}
	next := s.Clone()
	next.Tasks[ti] = out.Task
	next.Companions[ci] = out.Companion
	next.Timers = timers
	c := out.Companion
	e.log(&next, c.ID, LogAction, fmt.Sprintf("Completed task %q", out.Task.Title), now)
	if out.Change.LeveledUp() {
		e.log(&next, c.ID, LogStatusChange, pet.LevelUpNote(c, out.Change.LevelAfter), now)
	}
	if out.Change.Died {
		e.log(&next, c.ID, LogStatusChange, pet.DeathNote(c), now)
	}
	e.touch(&next, now)
	return next, out, nil
}

// ResetDaily replaces the active companion's unfinished daily tasks.
func (e *Engine) ResetDaily(s State, now time.Time) (State, []task.Task, error) {
	active, ok := s.Active()
	if !ok {
		return s, nil, ErrNoActiveCompanion
	}
	if !active.Alive {
		return s, nil, pet.ErrCompanionDead
	}
	next := s.Clone()
	var created []task.Task
	next.Tasks, created = e.planner().ResetDaily(next.Tasks, active, now, e.NewID)
	e.log(&next, active.ID, LogAction, "Daily tasks were reset", now)
	e.touch(&next, now)
	return next, created, nil
}

func (e *Engine) MarkEventRead(s State, eventID string, now time.Time) (State, error) {
	for i, ev := range s.Events {
		if ev.ID != eventID {
			continue
		}
		if ev.Read {
			return s, nil
		}
		next := s.Clone()
		next.Events[i].Read = true
		e.touch(&next, now)
		return next, nil
	}
	return s, ErrEventNotFound
}

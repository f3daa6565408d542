package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/session"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Session session.Store
	Engine  *game.Engine
	Now     func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	now := u.now()
	s, err := u.Session.Read(ctx, req.OwnerID, now)
	if err != nil {
		return Response{}, err
	}
	out := Response{
		Companions:        make([]CompanionView, 0, len(s.Companions)),
		ActiveCompanionID: s.ActiveCompanionID,
		UpdatedAt:         s.UpdatedAt.UTC().Format(time.RFC3339),
		Version:           s.Version,
	}
	for _, c := range s.Companions {
		v := view(c, now)
		out.Companions = append(out.Companions, v)
		if c.ID == s.ActiveCompanionID {
			active := v
			out.Active = &active
		}
	}
	for _, ev := range s.Events {
		if !ev.Read {
			out.UnreadEvents++
		}
	}
	if s.ActiveCompanionID != "" {
		out.OpenTasks = task.OpenCount(s.Tasks, s.ActiveCompanionID)
	}
	return out, nil
}

func view(c pet.Companion, now time.Time) CompanionView {
	return CompanionView{
		Companion: c,
		Vitals:    c.Vitals.Rounded(),
		Level:     c.Level(),
		MoodState: pet.MoodState(c.Vitals),
		Resting:   c.Resting(now),
	}
}

// Tasks lists the active companion's tasks, open ones first.
func (u UseCase) Tasks(ctx context.Context, req Request) (TasksResponse, error) {
	s, err := u.Session.Read(ctx, req.OwnerID, u.now())
	if err != nil {
		return TasksResponse{}, err
	}
	all := s.TasksFor(s.ActiveCompanionID)
	out := make([]task.Task, 0, len(all))
	for _, t := range all {
		if t.Open() {
			out = append(out, t)
		}
	}
	for _, t := range all {
		if !t.Open() {
			out = append(out, t)
		}
	}
	return TasksResponse{Tasks: out}, nil
}

func (u UseCase) Conversations(ctx context.Context, req Request) (ConversationsResponse, error) {
	s, err := u.Session.Read(ctx, req.OwnerID, u.now())
	if err != nil {
		return ConversationsResponse{}, err
	}
	out := make([]game.Conversation, 0, len(s.Conversations))
	for _, c := range s.Conversations {
		if c.CompanionID == s.ActiveCompanionID {
			out = append(out, c)
		}
	}
	return ConversationsResponse{Conversations: out}, nil
}

// Timers lists the active companion's timers with their progress.
func (u UseCase) Timers(ctx context.Context, req Request) (TimersResponse, error) {
	now := u.now()
	s, err := u.Session.Read(ctx, req.OwnerID, now)
	if err != nil {
		return TimersResponse{}, err
	}
	list := s.Timers.List()
	out := make([]TimerView, 0, len(list))
	for _, t := range list {
		i := s.TaskIndex(t.TaskID)
		if i < 0 || s.Tasks[i].CompanionID != s.ActiveCompanionID {
			continue
		}
		out = append(out, TimerView{Timer: t, Progress: t.Progress(now)})
	}
	return TimersResponse{Timers: out}, nil
}

// Events lists events newest first.
func (u UseCase) Events(ctx context.Context, req Request) (EventsResponse, error) {
	s, err := u.Session.Read(ctx, req.OwnerID, u.now())
	if err != nil {
		return EventsResponse{}, err
	}
	out := make([]pet.RandomEvent, 0, len(s.Events))
	for i := len(s.Events) - 1; i >= 0; i-- {
		out = append(out, s.Events[i])
	}
	return EventsResponse{Events: out}, nil
}

// Logs lists activity logs newest first.
func (u UseCase) Logs(ctx context.Context, req Request) (LogsResponse, error) {
	s, err := u.Session.Read(ctx, req.OwnerID, u.now())
	if err != nil {
		return LogsResponse{}, err
	}
	out := make([]game.ActivityLog, 0, len(s.Logs))
	for i := len(s.Logs) - 1; i >= 0; i-- {
		out = append(out, s.Logs[i])
	}
	return LogsResponse{Logs: out}, nil
}

func (u UseCase) MarkEventRead(ctx context.Context, req MarkReadRequest) error {
	if strings.TrimSpace(req.EventID) == "" {
		return ErrInvalidRequest
	}
	now := u.now()
	_, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		return u.Engine.MarkEventRead(s, req.EventID, now)
	})
	return err
}

func (u UseCase) DeleteSession(ctx context.Context, req Request) error {
	return u.Session.Delete(ctx, req.OwnerID)
}

package tasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/app/session"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

var (
	ErrInvalidRequest     = errors.New("invalid task request")
	ErrCompletionRejected = errors.New("task completion rejected")
)

// CompletionRejectedError carries the structured reason a start or completion
// was refused.
type CompletionRejectedError struct {
	Failure *task.Failure
}

func (e *CompletionRejectedError) Error() string {
	if e.Failure == nil {
		return ErrCompletionRejected.Error()
	}
	return ErrCompletionRejected.Error() + ": " + e.Failure.Reason
}

func (e *CompletionRejectedError) Unwrap() error {
	return ErrCompletionRejected
}

type StartRequest struct {
	OwnerID string
	TaskID  string
}

type CompleteRequest struct {
	OwnerID  string        `json:"-"`
	TaskID   string        `json:"-"`
	Evidence task.Evidence `json:"evidence"`
}

type Response struct {
	Task      task.Task     `json:"task"`
	Companion pet.Companion `json:"companion"`
	Timer     *task.Timer   `json:"timer,omitempty"`
	LevelUp   bool          `json:"level_up"`
	Level     int           `json:"level"`
}

type ResetRequest struct {
	OwnerID string
}

type ResetResponse struct {
	Created []task.Task `json:"created"`
}

type UseCase struct {
	Session session.Store
	Engine  *game.Engine
	Metrics ports.EngineMetrics
	Now     func() time.Time
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) Start(ctx context.Context, req StartRequest) (Response, error) {
	if strings.TrimSpace(req.TaskID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()
	var out task.Outcome
	_, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		next, o, err := u.Engine.StartTask(s, req.TaskID, now)
		if err != nil {
			return s, err
		}
		out = o
		return next, nil
	})
	if err != nil {
		return Response{}, u.reject(err)
	}
	return Response{Task: out.Task, Companion: out.Companion, Timer: out.Timer, Level: out.Companion.Level()}, nil
}

// Complete validates evidence and applies the reward exactly once. Rejections
// come back as *CompletionRejectedError and nothing is saved.
func (u UseCase) Complete(ctx context.Context, req CompleteRequest) (Response, error) {
	if strings.TrimSpace(req.TaskID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()
	var out task.Outcome
	_, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		next, o, err := u.Engine.CompleteTask(s, req.TaskID, req.Evidence, now)
		if err != nil {
			return s, err
		}
		out = o
		return next, nil
	})
	if err != nil {
		return Response{}, u.reject(err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordTaskCompleted()
	}
	return Response{
		Task:      out.Task,
		Companion: out.Companion,
		LevelUp:   out.Change.LeveledUp(),
		Level:     out.Change.LevelAfter,
	}, nil
}

func (u UseCase) ResetDaily(ctx context.Context, req ResetRequest) (ResetResponse, error) {
	now := u.now()
	var created []task.Task
	_, err := u.Session.Update(ctx, req.OwnerID, now, func(s game.State) (game.State, error) {
		next, c, err := u.Engine.ResetDaily(s, now)
		if err != nil {
			return s, err
		}
		created = c
		return next, nil
	})
	if err != nil {
		return ResetResponse{}, err
	}
	return ResetResponse{Created: created}, nil
}

func (u UseCase) reject(err error) error {
	var f *task.Failure
	if !errors.As(err, &f) {
		return err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTaskRejected(f.Code)
	}
	return &CompletionRejectedError{Failure: f}
}

package status

import (
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

type Request struct {
	OwnerID string
}

type CompanionView struct {
	pet.Companion
	Vitals    pet.Vitals `json:"vitals"`
	Level     int        `json:"level"`
	MoodState string     `json:"mood_state"`
	Resting   bool       `json:"resting"`
}

type Response struct {
	Active            *CompanionView  `json:"active,omitempty"`
	Companions        []CompanionView `json:"companions"`
	ActiveCompanionID string          `json:"active_companion_id"`
	UnreadEvents      int             `json:"unread_events"`
	OpenTasks         int             `json:"open_tasks"`
	UpdatedAt         string          `json:"updated_at"`
	Version           int64           `json:"version"`
}

type TasksResponse struct {
	Tasks []task.Task `json:"tasks"`
}

type ConversationsResponse struct {
	Conversations []game.Conversation `json:"conversations"`
}

type TimerView struct {
	task.Timer
	Progress task.Progress `json:"progress"`
}

type TimersResponse struct {
	Timers []TimerView `json:"timers"`
}

type EventsResponse struct {
	Events []pet.RandomEvent `json:"events"`
}

type LogsResponse struct {
	Logs []game.ActivityLog `json:"logs"`
}

type MarkReadRequest struct {
	OwnerID string
	EventID string
}

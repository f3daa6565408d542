package game

import (
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

const (
	MaxConversationEntries = 200
	MaxLogEntries          = 500
	MaxEventEntries        = 200
	MaxCompletedTasks      = 50
)

type Role string

const (
	RoleUser      Role = "user"
	RoleCompanion Role = "companion"
)

type Conversation struct {
	ID          string      `json:"id"`
	CompanionID string      `json:"companion_id"`
	Role        Role        `json:"role"`
	Content     string      `json:"content"`
	Action      string      `json:"action,omitempty"`
	Initiated   bool        `json:"initiated,omitempty"`
	Trigger     pet.Trigger `json:"trigger,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

type LogKind string

const (
	LogAction       LogKind = "action"
	LogEvent        LogKind = "event"
	LogStatusChange LogKind = "status_change"
)

type ActivityLog struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companion_id"`
	Kind        LogKind   `json:"kind"`
	Message     string    `json:"message"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// State is the whole persisted snapshot of one owner's session. Engine entry
// points take a State and return a transformed copy.
type State struct {
	OwnerID           string            `json:"owner_id"`
	Companions        []pet.Companion   `json:"companions"`
	ActiveCompanionID string            `json:"active_companion_id"`
	Tasks             []task.Task       `json:"tasks"`
	Conversations     []Conversation    `json:"conversations"`
	Timers            task.Timers       `json:"timers"`
	Events            []pet.RandomEvent `json:"events"`
	Logs              []ActivityLog     `json:"logs"`
	LastGeneratedAt   time.Time         `json:"last_generated_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	Version           int64             `json:"version"`
}

func NewState(ownerID string, now time.Time) State {
	return State{
		OwnerID:       ownerID,
		Companions:    []pet.Companion{},
		Tasks:         []task.Task{},
		Conversations: []Conversation{},
		Timers:        task.Timers{},
		Events:        []pet.RandomEvent{},
		Logs:          []ActivityLog{},
		UpdatedAt:     now,
	}
}

func (s State) Clone() State {
	out := s
	out.Companions = make([]pet.Companion, len(s.Companions))
	for i, c := range s.Companions {
		out.Companions[i] = c.Clone()
	}
	out.Tasks = make([]task.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone()
	}
	out.Conversations = append([]Conversation{}, s.Conversations...)
	out.Events = append([]pet.RandomEvent{}, s.Events...)
	out.Logs = append([]ActivityLog{}, s.Logs...)
	if s.Timers == nil {
		out.Timers = task.Timers{}
	} else {
		out.Timers = s.Timers.Clone()
	}
	return out
}

func (s State) CompanionIndex(id string) int {
	for i, c := range s.Companions {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s State) Companion(id string) (pet.Companion, bool) {
	i := s.CompanionIndex(id)
	if i < 0 {
		return pet.Companion{}, false
	}
	return s.Companions[i], true
}

func (s State) Active() (pet.Companion, bool) {
	if s.ActiveCompanionID == "" {
		return pet.Companion{}, false
	}
	return s.Companion(s.ActiveCompanionID)
}

func (s State) TaskIndex(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// TasksFor returns the tasks bound to companionID in insertion order.
func (s State) TasksFor(companionID string) []task.Task {
	out := make([]task.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.CompanionID == companionID {
			out = append(out, t)
		}
	}
	return out
}

func (s *State) appendLog(l ActivityLog) {
	s.Logs = append(s.Logs, l)
	if n := len(s.Logs); n > MaxLogEntries {
		s.Logs = append([]ActivityLog{}, s.Logs[n-MaxLogEntries:]...)
	}
}

func (s *State) appendConversation(c Conversation) {
	s.Conversations = append(s.Conversations, c)
	if n := len(s.Conversations); n > MaxConversationEntries {
		s.Conversations = append([]Conversation{}, s.Conversations[n-MaxConversationEntries:]...)
	}
}

func (s *State) appendEvent(e pet.RandomEvent) {
	s.Events = append(s.Events, e)
	if n := len(s.Events); n > MaxEventEntries {
		s.Events = append([]pet.RandomEvent{}, s.Events[n-MaxEventEntries:]...)
	}
}

package game

import (
	"errors"
	"time"

	"petverse/internal/domain/pet"
	"petverse/internal/domain/rng"
	"petverse/internal/domain/task"
)

var (
	ErrCompanionNotFound = errors.New("companion not found")
	ErrNoActiveCompanion = errors.New("no active companion")
	ErrEventNotFound     = errors.New("event not found")
	ErrCapacityExceeded  = errors.New("companion capacity exceeded")
	ErrInvalidInput      = errors.New("invalid input")
)

// Engine owns every numeric transition of a session. It holds no session state
// itself; callers pass a State in and persist the State that comes back.
type Engine struct {
	Tuning    Tuning
	Rand      rng.Source
	NewID     func() string
	Mutations []pet.MutationDefinition
	Events    []pet.EventTemplate
	Standard  []task.Template
	Risk      []task.Template
}

func NewEngine(tuning Tuning, src rng.Source, newID func() string) *Engine {
	return &Engine{
		Tuning:    tuning,
		Rand:      src,
		NewID:     newID,
		Mutations: pet.DefaultMutationCatalog(),
		Events:    pet.DefaultEventCatalog(),
		Standard:  task.DefaultStandardCatalog(),
		Risk:      task.DefaultRiskCatalog(),
	}
}

func (e *Engine) decay() pet.DecayProcessor {
	return pet.DecayProcessor{Rules: e.Tuning.Decay}
}

func (e *Engine) mutation() pet.MutationEngine {
	return pet.MutationEngine{Rules: e.Tuning.Mutation, Catalog: e.Mutations}
}

func (e *Engine) events() pet.EventGenerator {
	return pet.EventGenerator{Rules: e.Tuning.Events, Catalog: e.Events}
}

func (e *Engine) scheduler() pet.InteractionScheduler {
	return pet.InteractionScheduler{Rules: e.Tuning.Interaction}
}

func (e *Engine) manager() task.Manager {
	return task.Manager{Rules: e.Tuning.Tasks}
}

func (e *Engine) planner() task.Planner {
	return task.Planner{Rules: e.Tuning.Tasks, Standard: e.Standard, Risk: e.Risk}
}

func (e *Engine) log(s *State, companionID string, kind LogKind, msg string, now time.Time) {
	s.appendLog(ActivityLog{
		ID:          e.NewID(),
		CompanionID: companionID,
		Kind:        kind,
		Message:     msg,
		OccurredAt:  now,
	})
}

func (e *Engine) touch(s *State, now time.Time) {
	s.UpdatedAt = now
	s.Version++
}

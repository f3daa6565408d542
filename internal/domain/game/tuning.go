package game

import (
	"petverse/internal/domain/pet"
	"petverse/internal/domain/task"
)

const DefaultMaxCompanions = 5

// Tuning groups every simulation rule the engine consumes.
type Tuning struct {
	Decay         pet.DecayRules       `yaml:"decay"`
	Mutation      pet.MutationRules    `yaml:"mutation"`
	Events        pet.EventRules       `yaml:"events"`
	Interaction   pet.InteractionRules `yaml:"interaction"`
	Tasks         task.Rules           `yaml:"tasks"`
	MaxCompanions int                  `yaml:"max_companions"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Decay:         pet.DefaultDecayRules(),
		Mutation:      pet.DefaultMutationRules(),
		Events:        pet.DefaultEventRules(),
		Interaction:   pet.DefaultInteractionRules(),
		Tasks:         task.DefaultRules(),
		MaxCompanions: DefaultMaxCompanions,
	}
}

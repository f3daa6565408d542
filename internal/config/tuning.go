package config

import (
	"fmt"
	"os"
	"strings"

	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"

	"gopkg.in/yaml.v3"
)

// profilePatch mirrors pet.InteractionProfile with optional fields so a file
// can override one field of a profile and keep the rest.
type profilePatch struct {
	MinHours    *float64 `yaml:"min_hours"`
	Multiplier  *float64 `yaml:"multiplier"`
	CanInitiate *bool    `yaml:"can_initiate"`
}

type tuningPatch struct {
	Interaction struct {
		Profiles map[pet.Personality]profilePatch `yaml:"profiles"`
	} `yaml:"interaction"`
}

// LoadTuning overlays the YAML file at path on the default tuning; keys the
// file leaves out keep their defaults, down to single profile fields. An empty
// path returns the defaults. Durations are written as Go duration strings
// ("24h") and must be positive.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	var patch tuningPatch
	if err := yaml.Unmarshal(raw, &patch); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	defaults := pet.DefaultInteractionProfiles()
	for p, pp := range patch.Interaction.Profiles {
		if !p.Valid() {
			return t, fmt.Errorf("%s: unknown personality %q in interaction profiles", path, p)
		}
		prof := defaults[p]
		if pp.MinHours != nil {
			prof.MinHours = *pp.MinHours
		}
		if pp.Multiplier != nil {
			prof.Multiplier = *pp.Multiplier
		}
		if pp.CanInitiate != nil {
			prof.CanInitiate = *pp.CanInitiate
		}
		t.Interaction.Profiles[p] = prof
	}
	if err := validateTuning(t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func validateTuning(t game.Tuning) error {
	switch {
	case t.Mutation.CheckInterval <= 0:
		return fmt.Errorf("mutation.check_interval must be positive, got %v", t.Mutation.CheckInterval)
	case t.Events.Interval <= 0:
		return fmt.Errorf("events.interval must be positive, got %v", t.Events.Interval)
	case t.Tasks.GenerationInterval <= 0:
		return fmt.Errorf("tasks.generation_interval must be positive, got %v", t.Tasks.GenerationInterval)
	case t.Tasks.CompletionWindow <= 0:
		return fmt.Errorf("tasks.completion_window must be positive, got %v", t.Tasks.CompletionWindow)
	case t.MaxCompanions <= 0:
		return fmt.Errorf("max_companions must be positive, got %d", t.MaxCompanions)
	}
	return nil
}

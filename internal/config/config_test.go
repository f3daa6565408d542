package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
)

func TestFromEnvDefaultsAndOverrides(t *testing.T) {
	t.Setenv("PETVERSE_STORE", "SQLite")
	t.Setenv("PETVERSE_TICK_INTERVAL", "90")
	t.Setenv("PETVERSE_LLM_TIMEOUT", "2s")
	t.Setenv("PETVERSE_MAX_COMPANIONS", "not-a-number")
	t.Setenv("PETVERSE_ADDR", "")

	cfg := FromEnv()
	if cfg.Store != StoreSQLite {
		t.Fatalf("expected sqlite store, got %q", cfg.Store)
	}
	if cfg.TickInterval != 90*time.Second || cfg.LLMTimeout != 2*time.Second {
		t.Fatalf("unexpected durations tick=%v llm=%v", cfg.TickInterval, cfg.LLMTimeout)
	}
	if cfg.MaxCompanions != 0 {
		t.Fatalf("expected fallback for bad int, got %d", cfg.MaxCompanions)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
}

func TestLoadTuningEmptyPathUsesDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := game.DefaultTuning()
	if got.Decay != want.Decay || got.MaxCompanions != want.MaxCompanions {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
decay:
  energy_per_hour: 9
mutation:
  check_interval: 12h
max_companions: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := pet.DefaultDecayRules()
	if got.Decay.EnergyPerHour != 9 || got.Decay.MoodPerHour != def.MoodPerHour {
		t.Fatalf("expected only energy rate overridden, got %+v", got.Decay)
	}
	if got.Mutation.CheckInterval != 12*time.Hour {
		t.Fatalf("expected 12h check interval, got %v", got.Mutation.CheckInterval)
	}
	if got.MaxCompanions != 3 {
		t.Fatalf("expected max companions 3, got %d", got.MaxCompanions)
	}
	if len(got.Interaction.Profiles) == 0 {
		t.Fatalf("expected default interaction profiles kept")
	}
}

func TestLoadTuningErrors(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("decay: [1, 2"), 0o644)
	if _, err := LoadTuning(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadTuningMergesProfileFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
interaction:
  profiles:
    reserved:
      min_hours: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := pet.DefaultInteractionProfiles()[pet.PersonalityReserved]
	prof := got.Interaction.Profiles[pet.PersonalityReserved]
	if prof.MinHours != 10 || prof.Multiplier != def.Multiplier || prof.CanInitiate != def.CanInitiate {
		t.Fatalf("expected only min_hours overridden, got %+v", prof)
	}
	if got.Interaction.Profiles[pet.PersonalityOutgoing] != pet.DefaultInteractionProfiles()[pet.PersonalityOutgoing] {
		t.Fatalf("expected untouched profiles kept")
	}
}

func TestLoadTuningRejectsNonPositiveIntervals(t *testing.T) {
	for _, content := range []string{
		"mutation:\n  check_interval: 0s\n",
		"events:\n  interval: -1h\n",
		"tasks:\n  generation_interval: 0s\n",
		"interaction:\n  profiles:\n    grumpy:\n      min_hours: 1\n",
	} {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadTuning(path); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

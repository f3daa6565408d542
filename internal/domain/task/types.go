package task

import (
	"strings"
	"time"

	"petverse/internal/domain/pet"
)

type Strategy string

const (
	StrategyImmediate      Strategy = "immediate"
	StrategyPhysical       Strategy = "physical"
	StrategyConversational Strategy = "conversational"
	StrategyTimed          Strategy = "timed"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyImmediate, StrategyPhysical, StrategyConversational, StrategyTimed:
		return true
	default:
		return false
	}
}

type Kind string

const (
	KindDaily   Kind = "daily"
	KindSpecial Kind = "special"
	KindRisk    Kind = "risk"
)

type RiskLevel string

const (
	RiskNone    RiskLevel = ""
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskNone, RiskMedium, RiskHigh, RiskExtreme:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companion_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Kind        Kind      `json:"kind"`
	Strategy    Strategy  `json:"strategy"`
	Reward      pet.Delta `json:"reward"`
	RiskLevel   RiskLevel `json:"risk_level,omitempty"`
	RiskNote    string    `json:"risk_note,omitempty"`

	Keywords                []string `json:"keywords,omitempty"`
	TimerSeconds            int      `json:"timer_seconds,omitempty"`
	CompletionWindowMinutes int      `json:"completion_window_minutes"`

	Started   bool `json:"started"`
	Completed bool `json:"completed"`
	Expired   bool `json:"expired"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

// Open reports whether the task still counts towards the active set.
func (t Task) Open() bool {
	return !t.Completed && !t.Expired
}

// PastExpiry is true once now is strictly after ExpiresAt.
func (t Task) PastExpiry(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

func (t Task) CompletionWindow() time.Duration {
	if t.CompletionWindowMinutes <= 0 {
		return DefaultCompletionWindow
	}
	return time.Duration(t.CompletionWindowMinutes) * time.Minute
}

func (t Task) Clone() Task {
	out := t
	out.Keywords = append([]string(nil), t.Keywords...)
	if t.StartedAt != nil {
		v := *t.StartedAt
		out.StartedAt = &v
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		out.CompletedAt = &v
	}
	return out
}

// MissingKeywords returns the required keywords absent from text, matched
// case-insensitively as substrings.
func (t Task) MissingKeywords(text string) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, kw := range t.Keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}

// Evidence is what the caller supplies to prove completion.
type Evidence struct {
	Confirmed bool   `json:"confirmed"`
	Text      string `json:"text,omitempty"`
}

package task

import "time"

const (
	DefaultCompletionWindow = 10 * time.Minute
	RiskCompletionWindow    = 5 * time.Minute

	GenerationInterval = 10 * time.Minute
	OpenTaskFloor      = 5
	RiskTaskChance     = 0.3
)

type Rules struct {
	GenerationInterval time.Duration `yaml:"generation_interval"`
	OpenFloor          int           `yaml:"open_floor"`
	RiskChance         float64       `yaml:"risk_chance"`
	CompletionWindow   time.Duration `yaml:"completion_window"`
}

func DefaultRules() Rules {
	return Rules{
		GenerationInterval: GenerationInterval,
		OpenFloor:          OpenTaskFloor,
		RiskChance:         RiskTaskChance,
		CompletionWindow:   DefaultCompletionWindow,
	}
}

package ports

import (
	"context"

	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
)

type Prompt struct {
	Kind      game.NarrativeKind
	Companion pet.Companion
	Trigger   pet.Trigger
	Message   string
	History   []game.Conversation
}

type Generation struct {
	Content string `json:"content"`
	Action  string `json:"action,omitempty"`
}

// Generator produces narrative text. Implementations may be slow or fail;
// callers always hold a fallback.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (Generation, error)
}

type Analysis struct {
	Labels      []string `json:"labels"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
}

// Classifier describes what a companion looks like. It is consulted only when
// a companion is created.
type Classifier interface {
	Analyze(ctx context.Context, input string) (Analysis, error)
}

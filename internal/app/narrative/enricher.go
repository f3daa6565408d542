package narrative

import (
	"context"
	"strings"
	"time"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	DefaultTimeout = 8 * time.Second
	historyLimit   = 10
)

// Enricher asks the generator for text to replace the engine's fallbacks.
// Failures, timeouts and empty replies leave the fallback in place.
type Enricher struct {
	Generator ports.Generator
	Timeout   time.Duration
	Metrics   ports.EngineMetrics
}

// Generate returns one Narration per request; an empty Content means "keep
// the fallback".
func (e Enricher) Generate(ctx context.Context, state game.State, reqs []game.NarrativeRequest) []game.Narration {
	out := make([]game.Narration, len(reqs))
	if e.Generator == nil {
		return out
	}
	for i, req := range reqs {
		out[i] = e.one(ctx, state, req)
	}
	return out
}

func (e Enricher) one(ctx context.Context, state game.State, req game.NarrativeRequest) game.Narration {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gen, err := e.Generator.Generate(callCtx, ports.Prompt{
		Kind:      req.Kind,
		Companion: req.Companion,
		Trigger:   req.Trigger,
		Message:   req.Message,
		History:   history(state, req.CompanionID, req.ConversationID),
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "narrative fallback kind=%s companion=%s err=%v", req.Kind, req.CompanionID, err)
		e.fallback(req.Kind)
		return game.Narration{}
	}
	content := strings.TrimSpace(gen.Content)
	if content == "" {
		hlog.CtxWarnf(ctx, "narrative fallback kind=%s companion=%s: empty content", req.Kind, req.CompanionID)
		e.fallback(req.Kind)
		return game.Narration{}
	}
	return game.Narration{Content: content, Action: strings.TrimSpace(gen.Action)}
}

func (e Enricher) fallback(kind game.NarrativeKind) {
	if e.Metrics != nil {
		e.Metrics.RecordNarrativeFallback(kind)
	}
}

// history returns the companion's latest conversation entries, excluding the
// entry being written.
func history(state game.State, companionID, skipID string) []game.Conversation {
	out := make([]game.Conversation, 0, historyLimit)
	for i := len(state.Conversations) - 1; i >= 0 && len(out) < historyLimit; i-- {
		c := state.Conversations[i]
		if c.CompanionID != companionID || c.ID == skipID {
			continue
		}
		out = append(out, c)
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

package game

import (
	"time"

	"petverse/internal/domain/pet"
)

type NarrativeKind string

const (
	NarrativeReply     NarrativeKind = "reply"
	NarrativeProactive NarrativeKind = "proactive"
	NarrativeActivity  NarrativeKind = "activity"
)

// NarrativeRequest asks for optional generated text to replace a fallback the
// engine already wrote. Fulfilling it never changes numeric state.
type NarrativeRequest struct {
	Kind           NarrativeKind `json:"kind"`
	CompanionID    string        `json:"companion_id"`
	Companion      pet.Companion `json:"companion"`
	ConversationID string        `json:"conversation_id,omitempty"`
	Trigger        pet.Trigger   `json:"trigger,omitempty"`
	Message        string        `json:"message,omitempty"`
	Fallback       string        `json:"fallback"`
}

// Narration is generated text for one request.
type Narration struct {
	Content string
	Action  string
}

// ApplyNarration writes n into the entry req targets. Unknown targets are ignored.
func ApplyNarration(s State, req NarrativeRequest, n Narration) State {
	if n.Content == "" {
		return s
	}
	switch req.Kind {
	case NarrativeReply, NarrativeProactive:
		for i := range s.Conversations {
			if s.Conversations[i].ID != req.ConversationID {
				continue
			}
			s.Conversations = append([]Conversation{}, s.Conversations...)
			s.Conversations[i].Content = n.Content
			if n.Action != "" {
				s.Conversations[i].Action = n.Action
			}
			return s
		}
	case NarrativeActivity:
		if i := s.CompanionIndex(req.CompanionID); i >= 0 {
			s.Companions = append([]pet.Companion{}, s.Companions...)
			s.Companions[i].CurrentActivity = n.Content
		}
	}
	return s
}

// Narrate applies out[i] to reqs[i] and bumps the version when any text changed.
func Narrate(s State, reqs []NarrativeRequest, out []Narration, now time.Time) State {
	applied := 0
	for i, req := range reqs {
		if i >= len(out) || out[i].Content == "" {
			continue
		}
		s = ApplyNarration(s, req, out[i])
		applied++
	}
	if applied > 0 {
		s.UpdatedAt = now
		s.Version++
	}
	return s
}

package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
)

const systemLine = "You are a small everyday companion living with your owner. Speak casually, like a friend. Keep replies under three sentences."

func buildPrompt(p ports.Prompt) string {
	c := p.Companion
	var b strings.Builder
	b.WriteString(systemLine)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You are %s, a %s (%s). Personality: %s.\n", c.Name, nonEmpty(c.Kind, string(c.Category)), c.Description, c.Personality)
	v := c.Vitals.Rounded()
	fmt.Fprintf(&b, "Health %.0f, mood %.0f, energy %.0f, level %d. You feel %s.\n", v.Health, v.Mood, v.Energy, c.Level(), pet.MoodState(c.Vitals))
	if len(c.Mutations) > 0 {
		fmt.Fprintf(&b, "Traits you gained: %s.\n", strings.Join(c.Mutations, ", "))
	}

	if len(p.History) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, h := range p.History {
			who := "Owner"
			if h.Role == game.RoleCompanion {
				who = c.Name
			}
			fmt.Fprintf(&b, "%s: %s\n", who, h.Content)
		}
	}

	b.WriteString("\n")
	switch p.Kind {
	case game.NarrativeReply:
		fmt.Fprintf(&b, "Your owner just said: %q\nReply to them.\n", p.Message)
	case game.NarrativeProactive:
		fmt.Fprintf(&b, "Nobody asked, but you want to talk to your owner because you feel %s. Start the conversation.\n", p.Trigger)
	case game.NarrativeActivity:
		b.WriteString("Describe in one short sentence what you are doing right now.\n")
	}
	b.WriteString(`Answer only with JSON: {"content": "what you say", "action": "a short body gesture"}`)
	return b.String()
}

// parseGeneration accepts a JSON object, optionally wrapped in a markdown code
// fence. Anything else is taken as plain content.
func parseGeneration(raw string) ports.Generation {
	text := stripFence(strings.TrimSpace(raw))
	var g ports.Generation
	if strings.HasPrefix(text, "{") {
		if err := json.Unmarshal([]byte(text), &g); err == nil && strings.TrimSpace(g.Content) != "" {
			g.Content = strings.TrimSpace(g.Content)
			g.Action = strings.TrimSpace(g.Action)
			return g
		}
	}
	return ports.Generation{Content: text}
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func nonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

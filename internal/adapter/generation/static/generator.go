// Package static is a deterministic generator for hosts without a language
// model. The same prompt always produces the same text.
package static

import (
	"context"
	"fmt"
	"hash/fnv"

	"petverse/internal/app/ports"
	"petverse/internal/domain/game"
	"petverse/internal/domain/pet"
)

var replies = map[pet.Personality][]string{
	pet.PersonalityOutgoing:    {"Oh, tell me more! %s wants every detail.", "%s bounces over, clearly delighted you spoke up."},
	pet.PersonalityReserved:    {"%s listens quietly and nods.", "%s gives a small, shy reply."},
	pet.PersonalityComposed:    {"%s considers that for a moment, then answers calmly.", "%s takes it in stride."},
	pet.PersonalityVigorous:    {"%s is already up and ready for whatever is next!", "%s answers at full speed."},
	pet.PersonalityEnigmatic:   {"%s says something you will be thinking about all day.", "%s answers with a riddle."},
	pet.PersonalityAmiable:     {"%s smiles warmly at you.", "%s is happy you are here."},
	pet.PersonalityDetached:    {"%s shrugs, but does not leave.", "%s replies without looking up."},
	pet.PersonalityMischievous: {"%s grins like it is plotting something.", "%s answers and then hides your sock."},
}

var activities = []string{"napping in a sunny spot", "watching the window", "rearranging its corner", "humming to itself"}

type Generator struct{}

func (Generator) Generate(_ context.Context, p ports.Prompt) (ports.Generation, error) {
	c := p.Companion
	switch p.Kind {
	case game.NarrativeReply:
		lines, ok := replies[c.Personality]
		if !ok {
			lines = replies[pet.PersonalityAmiable]
		}
		return ports.Generation{Content: fmt.Sprintf(pick(lines, c.ID, p.Message), c.Name)}, nil
	case game.NarrativeProactive:
		return ports.Generation{Content: pet.ProactiveFallback(c, p.Trigger)}, nil
	case game.NarrativeActivity:
		return ports.Generation{Content: pick(activities, c.ID, c.LastActivityUpdate.String())}, nil
	default:
		return ports.Generation{}, fmt.Errorf("unknown narrative kind %q", p.Kind)
	}
}

func pick(options []string, keys ...string) string {
	h := fnv.New32a()
	for _, k := range keys {
		_, _ = h.Write([]byte(k))
	}
	return options[int(h.Sum32()%uint32(len(options)))]
}

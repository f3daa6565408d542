package pet

import (
	"fmt"

	"petverse/internal/domain/rng"
)

var bodyActions = map[Personality][]string{
	PersonalityOutgoing:    {"wiggles with excitement", "bounces around happily", "leans in eagerly"},
	PersonalityReserved:    {"nods softly", "looks down shyly", "watches you quietly"},
	PersonalityComposed:    {"regards you calmly", "settles into a neat pose", "answers evenly"},
	PersonalityVigorous:    {"spins in a circle", "waves around wildly", "hops on the spot"},
	PersonalityEnigmatic:   {"flickers faintly", "sways without a sound", "stares somewhere past you"},
	PersonalityAmiable:     {"smiles warmly", "shuffles closer", "answers gently"},
	PersonalityDetached:    {"glances over briefly", "keeps its distance", "barely reacts"},
	PersonalityMischievous: {"winks at you", "tumbles about playfully", "grins at some private joke"},
}

// BodyAction picks a personality-appropriate gesture, falling back to amiable.
func BodyAction(p Personality, src rng.Source) string {
	actions, ok := bodyActions[p]
	if !ok {
		actions = bodyActions[PersonalityAmiable]
	}
	return actions[src.Intn(len(actions))]
}

func ReplyFallback(c Companion) string {
	if c.Rest != nil {
		return fmt.Sprintf("%s mumbles sleepily and curls back up...", c.Name)
	}
	return fmt.Sprintf("%s looks a little puzzled but does its best to answer.", c.Name)
}

func ProactiveFallback(c Companion, t Trigger) string {
	switch t {
	case TriggerLonely:
		return fmt.Sprintf("%s has been waiting for you and feels a bit lonely.", c.Name)
	case TriggerTired:
		return fmt.Sprintf("%s yawns. It is running out of energy.", c.Name)
	case TriggerUnwell:
		return fmt.Sprintf("%s does not feel well and wants you nearby.", c.Name)
	case TriggerConfused:
		return fmt.Sprintf("%s feels strange changes stirring inside.", c.Name)
	case TriggerSocial:
		return fmt.Sprintf("%s wonders what you are up to.", c.Name)
	default:
		return fmt.Sprintf("%s wants your attention.", c.Name)
	}
}

func ActivityFallback(c Companion) string {
	switch {
	case c.Rest != nil:
		return "resting"
	case c.Vitals.Energy < 20:
		return "dozing off"
	case c.Vitals.Mood < 20:
		return "waiting by the door"
	case c.Vitals.Mutation > 70:
		return "staring at its own reflection"
	default:
		return "wandering around"
	}
}

func DeathNote(c Companion) string {
	return fmt.Sprintf("%s has passed away from lack of care.", c.Name)
}

func LevelUpNote(c Companion, level int) string {
	return fmt.Sprintf("%s reached level %d!", c.Name, level)
}

func MutationNote(c Companion, def MutationDefinition) string {
	return fmt.Sprintf("%s mutated: %s. %s", c.Name, def.Name, def.Description)
}

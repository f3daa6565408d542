package pet

import "time"

type ActionKind string

const (
	ActionFeed     ActionKind = "feed"
	ActionPlay     ActionKind = "play"
	ActionRest     ActionKind = "rest"
	ActionExercise ActionKind = "exercise"
	ActionCare     ActionKind = "care"
	ActionComfort  ActionKind = "comfort"
)

type Intensity string

const (
	IntensitySmall  Intensity = "small"
	IntensityMedium Intensity = "medium"
	IntensityLarge  Intensity = "large"
)

// DialogueAction is one care action recognised in an owner message.
type DialogueAction struct {
	Kind        ActionKind `json:"kind"`
	Intensity   Intensity  `json:"intensity"`
	Description string     `json:"description"`
	Effect      Delta      `json:"effect"`
	RestMinutes int        `json:"rest_minutes,omitempty"`
}

type actionFamily struct {
	kind    ActionKind
	match   []string
	large   []string
	small   []string
	effects map[Intensity]Delta
	rest    map[Intensity]int
	text    map[Intensity]string
}

var actionFamilies = []actionFamily{
	{
		kind:  ActionFeed,
		match: []string{"eat", "ate", "feed", "fed", "food", "snack", "meal", "dinner", "lunch", "charge", "water", "treat"},
		large: []string{"feast", "big meal", "banquet", "barbecue"},
		small: []string{"snack", "nibble", "bite"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Energy: 10, Mood: 5, Health: 5},
			IntensityMedium: {Energy: 20, Mood: 10, Health: 5},
			IntensityLarge:  {Energy: 35, Mood: 20, Health: 5},
		},
		text: map[Intensity]string{
			IntensitySmall:  "had a small snack",
			IntensityMedium: "had a good meal",
			IntensityLarge:  "enjoyed a huge feast",
		},
	},
	{
		kind:  ActionPlay,
		match: []string{"play", "game", "toy", "fetch", "hang out"},
		large: []string{"all day", "go wild", "as much as"},
		small: []string{"quick", "a bit", "simple", "a while"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Mood: 8, Energy: -2, Experience: 5},
			IntensityMedium: {Mood: 15, Energy: -5, Experience: 10},
			IntensityLarge:  {Mood: 25, Energy: -10, Experience: 15},
		},
		text: map[Intensity]string{
			IntensitySmall:  "played a quick game",
			IntensityMedium: "played together for a while",
			IntensityLarge:  "had a long happy play session",
		},
	},
	{
		kind:  ActionRest,
		match: []string{"rest", "sleep", "slept", "nap", "napping", "relax", "lie down", "bed"},
		large: []string{"deep sleep", "good rest", "sleep well", "long rest"},
		small: []string{"nap", "short", "quick", "a bit"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Energy: 10, Health: 5},
			IntensityMedium: {Energy: 20, Health: 10},
			IntensityLarge:  {Energy: 35, Health: 15},
		},
		rest: map[Intensity]int{
			IntensitySmall:  30,
			IntensityMedium: 60,
			IntensityLarge:  120,
		},
		text: map[Intensity]string{
			IntensitySmall:  "took a short nap",
			IntensityMedium: "had a proper rest",
			IntensityLarge:  "fell into a deep sleep",
		},
	},
	{
		kind:  ActionExercise,
		match: []string{"exercise", "workout", "train", "run", "running", "ran", "walk", "jog", "squat", "gym"},
		large: []string{"hard", "intense", "marathon", "push it"},
		small: []string{"easy", "light", "stroll", "walk"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Health: 8, Energy: -8, Mood: 8, Experience: 6},
			IntensityMedium: {Health: 15, Energy: -15, Mood: 8, Experience: 12},
			IntensityLarge:  {Health: 25, Energy: -35, Mood: 8, Experience: 20},
		},
		text: map[Intensity]string{
			IntensitySmall:  "went for a light stroll",
			IntensityMedium: "got some decent exercise",
			IntensityLarge:  "went through an intense workout",
		},
	},
	{
		kind:  ActionCare,
		match: []string{"clean", "groom", "brush", "check up", "heal", "bandage", "polish"},
		large: []string{"thorough", "carefully", "full"},
		small: []string{"quick", "simple"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Health: 12, Mood: 6},
			IntensityMedium: {Health: 20, Mood: 12},
			IntensityLarge:  {Health: 30, Mood: 18},
		},
		text: map[Intensity]string{
			IntensitySmall:  "got a quick once-over",
			IntensityMedium: "was looked after",
			IntensityLarge:  "got a thorough grooming",
		},
	},
	{
		kind:  ActionComfort,
		match: []string{"hug", "comfort", "pat you", "cuddle", "love you", "proud of you"},
		large: []string{"tight", "gently", "always"},
		small: []string{"little", "quick"},
		effects: map[Intensity]Delta{
			IntensitySmall:  {Mood: 10, Health: 4},
			IntensityMedium: {Mood: 18, Health: 8},
			IntensityLarge:  {Mood: 28, Health: 12},
		},
		text: map[Intensity]string{
			IntensitySmall:  "got a little comfort",
			IntensityMedium: "was comforted",
			IntensityLarge:  "was held close for a long time",
		},
	},
}

// AnalyzeMessage returns at most one action per family, in family order.
func AnalyzeMessage(text string) []DialogueAction {
	msg := newWords(text)
	var out []DialogueAction
	for _, fam := range actionFamilies {
		if !msg.hasAny(fam.match) {
			continue
		}
		intensity := IntensityMedium
		switch {
		case msg.hasAny(fam.large):
			intensity = IntensityLarge
		case msg.hasAny(fam.small):
			intensity = IntensitySmall
		}
		out = append(out, DialogueAction{
			Kind:        fam.kind,
			Intensity:   intensity,
			Description: fam.text[intensity],
			Effect:      fam.effects[intensity],
			RestMinutes: fam.rest[intensity],
		})
	}
	return out
}

type DialogueResult struct {
	Companion Companion
	Actions   []DialogueAction
	Change    Change
}

// ApplyDialogue applies every recognised action and stamps LastInteraction.
// A rest action opens a new resting window.
func ApplyDialogue(c Companion, text string, now time.Time) DialogueResult {
	next := c.Clone()
	out := DialogueResult{Actions: AnalyzeMessage(text)}
	if !next.Alive {
		out.Companion = next
		out.Change = Change{LevelBefore: next.Level(), LevelAfter: next.Level()}
		return out
	}
	var total Delta
	rest := 0
	for _, a := range out.Actions {
		total = total.Add(a.Effect)
		if a.RestMinutes > rest {
			rest = a.RestMinutes
		}
	}
	out.Change = next.ApplyDelta(total)
	if rest > 0 && next.Alive {
		next.Rest = &RestWindow{StartedAt: now, Minutes: rest}
	}
	next.LastInteraction = now
	out.Companion = next
	return out
}

func (d Delta) Add(o Delta) Delta {
	return Delta{
		Health:     d.Health + o.Health,
		Mood:       d.Mood + o.Mood,
		Energy:     d.Energy + o.Energy,
		Mutation:   d.Mutation + o.Mutation,
		Experience: d.Experience + o.Experience,
	}
}

package pet

import "time"

type Category string

const (
	CategoryCreature   Category = "creature"
	CategoryMechanism  Category = "mechanism"
	CategoryFlora      Category = "flora"
	CategoryAnomalous  Category = "anomalous"
	CategoryConsumable Category = "consumable"
	CategoryArtifact   Category = "artifact"
)

func Categories() []Category {
	return []Category{
		CategoryCreature,
		CategoryMechanism,
		CategoryFlora,
		CategoryAnomalous,
		CategoryConsumable,
		CategoryArtifact,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCreature, CategoryMechanism, CategoryFlora, CategoryAnomalous, CategoryConsumable, CategoryArtifact:
		return true
	default:
		return false
	}
}

type Personality string

const (
	PersonalityOutgoing    Personality = "outgoing"
	PersonalityReserved    Personality = "reserved"
	PersonalityComposed    Personality = "composed"
	PersonalityVigorous    Personality = "vigorous"
	PersonalityEnigmatic   Personality = "enigmatic"
	PersonalityAmiable     Personality = "amiable"
	PersonalityDetached    Personality = "detached"
	PersonalityMischievous Personality = "mischievous"
)

func Personalities() []Personality {
	return []Personality{
		PersonalityOutgoing,
		PersonalityReserved,
		PersonalityComposed,
		PersonalityVigorous,
		PersonalityEnigmatic,
		PersonalityAmiable,
		PersonalityDetached,
		PersonalityMischievous,
	}
}

func (p Personality) Valid() bool {
	switch p {
	case PersonalityOutgoing, PersonalityReserved, PersonalityComposed, PersonalityVigorous,
		PersonalityEnigmatic, PersonalityAmiable, PersonalityDetached, PersonalityMischievous:
		return true
	default:
		return false
	}
}

// Vitals are always held inside [MinVital, MaxVital]. Fractions are kept so that
// slow linear decay over short ticks is not lost to rounding.
type Vitals struct {
	Health   float64 `json:"health"`
	Mood     float64 `json:"mood"`
	Energy   float64 `json:"energy"`
	Mutation float64 `json:"mutation"`
}

// Delta is a signed change over the vitals plus experience.
type Delta struct {
	Health     float64 `json:"health,omitempty"`
	Mood       float64 `json:"mood,omitempty"`
	Energy     float64 `json:"energy,omitempty"`
	Mutation   float64 `json:"mutation,omitempty"`
	Experience int     `json:"experience,omitempty"`
}

func (d Delta) IsZero() bool {
	return d == Delta{}
}

type RestWindow struct {
	StartedAt time.Time `json:"started_at"`
	Minutes   int       `json:"minutes"`
}

func (r RestWindow) EndsAt() time.Time {
	return r.StartedAt.Add(time.Duration(r.Minutes) * time.Minute)
}

type Companion struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Kind            string      `json:"kind"`
	Description     string      `json:"description"`
	Category        Category    `json:"category"`
	Personality     Personality `json:"personality"`
	SpecialNeeds    []string    `json:"special_needs"`
	Vitals          Vitals      `json:"vitals"`
	Experience      int         `json:"experience"`
	Alive           bool        `json:"is_alive"`
	Mutations       []string    `json:"mutations"`
	CurrentActivity string      `json:"current_activity"`

	CreatedAt          time.Time `json:"created_at"`
	LastInteraction    time.Time `json:"last_interaction"`
	LastDecayAt        time.Time `json:"last_decay_at"`
	LastMutationCheck  time.Time `json:"last_mutation_check"`
	LastActivityUpdate time.Time `json:"last_activity_update"`
	LastProactiveAt    time.Time `json:"last_proactive_at"`

	Rest *RestWindow `json:"rest,omitempty"`
}

// Change summarizes what an applied delta did to a companion.
type Change struct {
	LevelBefore int
	LevelAfter  int
	Died        bool
}

func (c Change) LeveledUp() bool {
	return c.LevelAfter > c.LevelBefore
}

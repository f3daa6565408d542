package pet

import "time"

const (
	DefaultEnergyDecayPerHour = 2.0
	DefaultMoodDecayPerHour   = 1.0
	DefaultHealthDecayPerHour = 2.0
	LowResourceThreshold      = 10.0

	MutationCheckInterval = 24 * time.Hour
	MutationChanceScale   = 0.3
	MutationChanceCap     = 0.3
	MutationRelief        = 30.0

	RandomEventInterval = 4 * time.Hour

	SocialInitiationChance = 0.1
	LonelyMoodBelow        = 20.0
	TiredEnergyBelow       = 20.0
	UnwellHealthBelow      = 30.0
	ConfusedMutationAbove  = 70.0
)

type DecayRules struct {
	EnergyPerHour float64 `yaml:"energy_per_hour"`
	MoodPerHour   float64 `yaml:"mood_per_hour"`
	HealthPerHour float64 `yaml:"health_per_hour"`
	LowThreshold  float64 `yaml:"low_threshold"`
}

type MutationRules struct {
	CheckInterval time.Duration `yaml:"check_interval"`
	ChanceScale   float64       `yaml:"chance_scale"`
	ChanceCap     float64       `yaml:"chance_cap"`
	Relief        float64       `yaml:"relief"`
}

type EventRules struct {
	Interval time.Duration `yaml:"interval"`
}

type InteractionProfile struct {
	MinHours    float64 `yaml:"min_hours"`
	Multiplier  float64 `yaml:"multiplier"`
	CanInitiate bool    `yaml:"can_initiate"`
}

type InteractionRules struct {
	SocialChance  float64                             `yaml:"social_chance"`
	LonelyBelow   float64                             `yaml:"lonely_mood_below"`
	TiredBelow    float64                             `yaml:"tired_energy_below"`
	UnwellBelow   float64                             `yaml:"unwell_health_below"`
	ConfusedAbove float64                             `yaml:"confused_mutation_above"`
	Profiles      map[Personality]InteractionProfile `yaml:"profiles"`
}

func DefaultDecayRules() DecayRules {
	return DecayRules{
		EnergyPerHour: DefaultEnergyDecayPerHour,
		MoodPerHour:   DefaultMoodDecayPerHour,
		HealthPerHour: DefaultHealthDecayPerHour,
		LowThreshold:  LowResourceThreshold,
	}
}

func DefaultMutationRules() MutationRules {
	return MutationRules{
		CheckInterval: MutationCheckInterval,
		ChanceScale:   MutationChanceScale,
		ChanceCap:     MutationChanceCap,
		Relief:        MutationRelief,
	}
}

func DefaultEventRules() EventRules {
	return EventRules{Interval: RandomEventInterval}
}

func DefaultInteractionRules() InteractionRules {
	return InteractionRules{
		SocialChance:  SocialInitiationChance,
		LonelyBelow:   LonelyMoodBelow,
		TiredBelow:    TiredEnergyBelow,
		UnwellBelow:   UnwellHealthBelow,
		ConfusedAbove: ConfusedMutationAbove,
		Profiles:      DefaultInteractionProfiles(),
	}
}

func DefaultInteractionProfiles() map[Personality]InteractionProfile {
	return map[Personality]InteractionProfile{
		PersonalityOutgoing:    {MinHours: 2, Multiplier: 0.8, CanInitiate: true},
		PersonalityReserved:    {MinHours: 6, Multiplier: 1.5, CanInitiate: true},
		PersonalityComposed:    {MinHours: 4, Multiplier: 1.2, CanInitiate: true},
		PersonalityVigorous:    {MinHours: 2, Multiplier: 0.7, CanInitiate: true},
		PersonalityEnigmatic:   {MinHours: 8, Multiplier: 2.0, CanInitiate: false},
		PersonalityAmiable:     {MinHours: 3, Multiplier: 1.0, CanInitiate: true},
		PersonalityDetached:    {MinHours: 8, Multiplier: 2.0, CanInitiate: false},
		PersonalityMischievous: {MinHours: 2, Multiplier: 0.9, CanInitiate: true},
	}
}

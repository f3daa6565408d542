package pet

// DefaultMutationCatalog is the built-in set of mutations a companion may acquire.
func DefaultMutationCatalog() []MutationDefinition {
	return []MutationDefinition{
		{
			ID: "mut-glow", Name: "Bioluminescence", Kind: MutationAppearance, Rarity: RarityCommon,
			Description: "Faint light pulses along its outline after dark.",
			Effects:     MutationEffects{MoodMultiplier: 1.1},
			MinMutation: 20,
		},
		{
			ID: "mut-thick-hide", Name: "Thick Hide", Kind: MutationPhysical, Rarity: RarityCommon,
			Description: "Its outer layer toughens against knocks and weather.",
			Effects:     MutationEffects{HealthMultiplier: 1.15},
			MinMutation: 20,
		},
		{
			ID: "mut-restless", Name: "Restless Spark", Kind: MutationBehavioral, Rarity: RarityCommon,
			Description: "It fidgets constantly and burns through its reserves.",
			Effects:     MutationEffects{EnergyMultiplier: 0.85, MoodMultiplier: 1.05},
			MinMutation: 25,
		},
		{
			ID: "mut-photosynthesis", Name: "Photosynthesis", Kind: MutationAbility, Rarity: RarityRare,
			Description: "It recovers energy simply by sitting in the light.",
			Effects:     MutationEffects{EnergyMultiplier: 1.2, SpecialAbility: "recovers energy in daylight"},
			MinMutation: 35,
			Categories:  []Category{CategoryFlora, CategoryCreature},
		},
		{
			ID: "mut-overclock", Name: "Overclocked Core", Kind: MutationAbility, Rarity: RarityRare,
			Description: "Its internals hum at a higher pitch than they were built for.",
			Effects:     MutationEffects{EnergyMultiplier: 1.25, HealthMultiplier: 0.9, SpecialAbility: "bursts of speed"},
			MinMutation: 35,
			Categories:  []Category{CategoryMechanism, CategoryArtifact},
		},
		{
			ID: "mut-echo", Name: "Echo Voice", Kind: MutationBehavioral, Rarity: RarityRare,
			Description: "Everything it says comes back a half second later.",
			Effects:     MutationEffects{MoodMultiplier: 1.15},
			MinMutation: 40,
			Personalities: []Personality{
				PersonalityOutgoing, PersonalityMischievous, PersonalityAmiable,
			},
		},
		{
			ID: "mut-prism", Name: "Prismatic Shell", Kind: MutationAppearance, Rarity: RarityEpic,
			Description: "Light splits into colours wherever it moves.",
			Effects:     MutationEffects{MoodMultiplier: 1.2, HealthMultiplier: 1.1},
			MinMutation: 55,
		},
		{
			ID: "mut-phase", Name: "Phase Drift", Kind: MutationAbility, Rarity: RarityEpic,
			Description: "It sometimes slips a little out of step with the world.",
			Effects:     MutationEffects{EnergyMultiplier: 0.9, SpecialAbility: "passes through thin walls"},
			MinMutation: 60,
			Categories:  []Category{CategoryAnomalous, CategoryArtifact},
		},
		{
			ID: "mut-second-heart", Name: "Second Heart", Kind: MutationPhysical, Rarity: RarityLegendary,
			Description: "A second rhythm has joined the first.",
			Effects:     MutationEffects{HealthMultiplier: 1.3, EnergyMultiplier: 1.1},
			MinMutation: 75,
		},
		{
			ID: "mut-starsight", Name: "Starsight", Kind: MutationAbility, Rarity: RarityLegendary,
			Description: "It watches things nobody else can see.",
			Effects:     MutationEffects{MoodMultiplier: 0.9, SpecialAbility: "senses distant events"},
			MinMutation: 80,
			Personalities: []Personality{
				PersonalityEnigmatic, PersonalityDetached, PersonalityComposed,
			},
		},
	}
}

// DefaultEventCatalog is the built-in set of spontaneous occurrences.
func DefaultEventCatalog() []EventTemplate {
	return []EventTemplate{
		{
			Tone: TonePositive, Title: "Found a treasure",
			Description: "{name} dug up something shiny and is very pleased with it.",
			Effect:      Delta{Mood: 10, Experience: 5},
		},
		{
			Tone: TonePositive, Title: "Good nap",
			Description: "{name} curled up somewhere warm and woke up refreshed.",
			Effect:      Delta{Energy: 15, Health: 3},
		},
		{
			Tone: TonePositive, Title: "New friend",
			Description: "{name} met a stranger on the way and they got along well.",
			Effect:      Delta{Mood: 12, Experience: 8},
		},
		{
			Tone: ToneNegative, Title: "Bad dream",
			Description: "{name} woke up startled and has been jumpy since.",
			Effect:      Delta{Mood: -8, Energy: -5},
		},
		{
			Tone: ToneNegative, Title: "Minor scrape",
			Description: "{name} bumped into something and is nursing the spot.",
			Effect:      Delta{Health: -6, Mood: -3},
		},
		{
			Tone: ToneNegative, Title: "Strange exposure",
			Description: "{name} wandered through something that left it tingling.",
			Effect:      Delta{Mutation: 8, Health: -2},
		},
		{
			Tone: ToneNeutral, Title: "Quiet afternoon",
			Description: "{name} spent a while watching the world go by.",
			Effect:      Delta{Energy: 4, Mood: -1},
		},
		{
			Tone: ToneNeutral, Title: "Odd reflection",
			Description: "{name} stared at its reflection for a long time.",
			Effect:      Delta{Mutation: 3, Experience: 2},
		},
	}
}

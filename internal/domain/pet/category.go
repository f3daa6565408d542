package pet

import "strings"

// categoryKeywords is checked in order; the first category with a hit wins and
// creature is the fallback.
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryMechanism, []string{"robot", "machine", "mechanical", "electronic", "gear", "circuit", "device", "drone"}},
	{CategoryFlora, []string{"plant", "flower", "tree", "leaf", "cactus", "succulent", "moss", "growing"}},
	{CategoryConsumable, []string{"tea", "coffee", "cake", "juice", "drink", "bread", "candy", "snack", "soda"}},
	{CategoryArtifact, []string{"book", "toy", "tissue", "cup", "lamp", "pen", "mug", "chair", "sock"}},
	{CategoryAnomalous, []string{"magic", "dragon", "mystic", "ghost", "crystal", "spirit", "arcane"}},
	{CategoryCreature, []string{"cat", "kitten", "dog", "puppy", "bird", "fish", "hamster", "rabbit", "bunny", "animal", "pet"}},
}

var specialNeeds = map[Category][]string{
	CategoryCreature:   {"feeding", "cleaning", "exercise"},
	CategoryMechanism:  {"charging", "maintenance", "upgrades"},
	CategoryFlora:      {"watering", "sunlight", "pruning"},
	CategoryConsumable: {"freshness", "temperature control", "topping up"},
	CategoryArtifact:   {"cleaning", "upkeep", "storage"},
	CategoryAnomalous:  {"mana", "rituals", "enchanted items"},
}

// CategoryFromLabels picks a category from classifier labels and free text.
// Labels are consulted first; the description only decides when no label
// matches a keyword.
func CategoryFromLabels(labels []string, description string) Category {
	if c, ok := matchCategory(newWords(strings.Join(labels, " "))); ok {
		return c
	}
	if c, ok := matchCategory(newWords(description)); ok {
		return c
	}
	return CategoryCreature
}

func matchCategory(w words) (Category, bool) {
	for _, entry := range categoryKeywords {
		if w.hasAny(entry.words) {
			return entry.category, true
		}
	}
	return "", false
}

func SpecialNeeds(c Category) []string {
	return append([]string(nil), specialNeeds[c]...)
}

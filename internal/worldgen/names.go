package worldgen

// Procedural place names. Each generator mixes the feature's index into the
// word-table lookups so names stay varied even with few RNG draws, and the
// draws themselves keep the sequence deterministic per seed.

var (
	oceanPrefixes = []string{"Azure", "Cerulean", "Sapphire", "Mystic", "Crystal", "Eternal", "Whispering"}
	oceanSuffixes = []string{"Sea", "Ocean", "Deep", "Abyss", "Waters", "Expanse", "Bay"}

	mountainPrefixes    = []string{"Mount", "Mt.", "Peak"}
	mountainFirstParts  = []string{"Storm", "Iron", "Snow", "Thunder", "Eagle", "Wolf", "Dragon", "Crystal", "Shadow", "Silver", "Golden", "Frost", "Wind", "Cloud", "Stone", "Red"}
	mountainSecondParts = []string{"horn", "crest", "spire", "ridge", "tooth", "peak", "crown", "fang", "head", "point", "top", "summit", "needle", "wall"}
	mountainSuffixes    = []string{"Mountains", "Range", "Peaks", "Heights", "Alps", "Highlands"}

	forestAdjectives = []string{"Whispering", "Ancient", "Enchanted", "Dark", "Silver", "Golden", "Misty"}
	forestNouns      = []string{"Woods", "Forest", "Grove", "Thicket", "Woodland", "Glade", "Copse"}

	swampAdjectives = []string{"Murky", "Fetid", "Misty", "Black", "Forgotten", "Cursed", "Silent"}
	swampNouns      = []string{"Marsh", "Swamp", "Bog", "Fen", "Mire", "Wetlands", "Quagmire"}

	cityPrefixes    = []string{"New", "Port", "Fort", "Saint", "North", "South", "East", "West", "Old", ""}
	cityFirstParts  = []string{"Oak", "River", "Lake", "Hill", "Green", "White", "Black", "Gold", "Silver", "Spring", "Summer", "Winter", "Mill", "Fair", "Clear", "Bright"}
	citySecondParts = []string{"haven", "bridge", "vale", "crest", "shore", "field", "gate", "wells", "cross", "wood", "meadow", "ridge", "view", "hill", "brook"}
	citySuffixes    = []string{"ton", "ville", "burg", "shire", "ford", "mouth", "stead", "ham", "thorpe"}
	cityTypes       = []string{" City", " Town", "", "", ""}

	roadDescriptors = []string{"King's", "Queen's", "Merchant's", "Old", "Ancient", "Royal", "Imperial", "Trade", "Coastal", "Mountain", "Forest", "Valley", "Pioneer", "Settler's", "Hunter's", "Pilgrim's"}

	riverPrefixes = []string{"River", "The"}
	riverNames    = []string{"Silverflow", "Clearwater", "Rushing", "Serpent", "Crystal", "Moonwater", "Swift"}

	bridgePrefixes = []string{"Old", "New", "Great", "High", "Stone", "Iron", "Wooden", "Ancient"}
	bridgeMiddles  = []string{"River", "Creek", "Valley", "Canyon", "Gorge", "Falls", "Rapids", "Mill"}
)

func (g *Generator) cityName(index int) string {
	hasPrefix := g.rng.Chance(0.4)

	firstIdx := (index*3 + g.rng.IntN(4)) % len(cityFirstParts)
	secondIdx := (index*5 + g.rng.IntN(3)) % len(citySecondParts)

	base := cityFirstParts[firstIdx] + citySecondParts[secondIdx]
	if g.rng.Chance(0.6) {
		suffixIdx := (index*7 + g.rng.IntN(2)) % len(citySuffixes)
		base += citySuffixes[suffixIdx]
	}

	if hasPrefix {
		if prefix := cityPrefixes[g.rng.IntN(len(cityPrefixes))]; prefix != "" {
			base = prefix + " " + base
		}
	}

	return base + cityTypes[g.rng.IntN(len(cityTypes))]
}

func (g *Generator) oceanName(index int) string {
	prefix := oceanPrefixes[(index+g.rng.IntN(3))%len(oceanPrefixes)]
	suffix := oceanSuffixes[(index*3+g.rng.IntN(2))%len(oceanSuffixes)]
	return prefix + " " + suffix
}

func (g *Generator) mountainName(index int) string {
	prefixIdx := (index + g.rng.IntN(3)) % len(mountainPrefixes)
	firstIdx := (index*7 + g.rng.IntN(4)) % len(mountainFirstParts)
	secondIdx := (index*5 + g.rng.IntN(3)) % len(mountainSecondParts)

	compound := mountainFirstParts[firstIdx] + mountainSecondParts[secondIdx]
	if g.rng.Chance(0.4) {
		suffix := mountainSuffixes[g.rng.IntN(len(mountainSuffixes))]
		return "The " + compound + " " + suffix
	}
	return mountainPrefixes[prefixIdx] + " " + compound
}

func (g *Generator) forestName(index int) string {
	adj := forestAdjectives[(index+g.rng.IntN(3))%len(forestAdjectives)]
	noun := forestNouns[(index*3+g.rng.IntN(2))%len(forestNouns)]
	return adj + " " + noun
}

func (g *Generator) swampName(index int) string {
	adj := swampAdjectives[(index+g.rng.IntN(3))%len(swampAdjectives)]
	noun := swampNouns[(index*3+g.rng.IntN(2))%len(swampNouns)]
	return adj + " " + noun
}

func (g *Generator) roadName(index int) string {
	return roadDescriptors[(index*3+g.rng.IntN(4))%len(roadDescriptors)]
}

func (g *Generator) riverName(index int) string {
	prefix := riverPrefixes[(index+g.rng.IntN(2))%len(riverPrefixes)]
	name := riverNames[(index*3+g.rng.IntN(3))%len(riverNames)]
	if prefix == "The" {
		return "The " + name + " River"
	}
	return name + " River"
}

func (g *Generator) bridgeName(index int) string {
	prefix := bridgePrefixes[(index*5+g.rng.IntN(3))%len(bridgePrefixes)]
	middle := bridgeMiddles[(index*3+g.rng.IntN(2))%len(bridgeMiddles)]
	return prefix + " " + middle + " Bridge"
}

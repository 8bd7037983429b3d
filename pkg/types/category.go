package types

import "strings"

// Category selects the aging rule applied to an item. The set is closed.
type Category uint8

const (
	unresolved Category = iota
	Ordinary
	Aged
	Legendary
	Backstage
	Conjured
)

const (
	AgedBrieName  = "Aged Brie"
	SulfurasName  = "Sulfuras, Hand of Ragnaros"
	BackstageName = "Backstage passes"
	ConjuredName  = "Conjured"
)

var categoryNames = map[Category]string{
	Ordinary:  "ordinary",
	Aged:      "aged",
	Legendary: "legendary",
	Backstage: "backstage",
	Conjured:  "conjured",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unresolved"
}

// ResolveCategory maps an item name to its category. Names that match no
// special category are ordinary items.
func ResolveCategory(name string) Category {
	switch {
	case name == AgedBrieName:
		return Aged
	case name == SulfurasName:
		return Legendary
	case hasWordPrefix(name, BackstageName):
		return Backstage
	case hasWordPrefix(name, ConjuredName):
		return Conjured
	default:
		return Ordinary
	}
}

// hasWordPrefix reports whether name is prefix or starts with prefix followed by a space.
func hasWordPrefix(name, prefix string) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	return ok && (rest == "" || rest[0] == ' ')
}

package types

import (
	"fmt"
	"math"
)

// AgingRule advances a single item of one category by one day.
type AgingRule interface {
	Category() Category
	Age(item Item) Item
}

var lookup = make(map[Category]AgingRule)

func Register(rule AgingRule) {
	lookup[rule.Category()] = rule
}

// RuleFor returns the registered rule for c. Every category in the closed
// set has a rule; a missing one is a programming error.
func RuleFor(c Category) AgingRule {
	rule, ok := lookup[c]
	if !ok {
		panic(fmt.Sprintf("no aging rule registered for category %s", c))
	}
	return rule
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampQuality(quality int) int {
	return clamp(quality, MinQuality, MaxQuality)
}

// degrade is the shared shape of ordinary, aged and conjured items: the
// delta is picked from the sellIn value before it is decremented.
func degrade(item Item, fresh, expired int) Item {
	delta := fresh
	if item.SellIn < 0 {
		delta = expired
	}
	item.Quality = clampQuality(item.Quality + delta)
	item.SellIn = decrementSellIn(item.SellIn)
	return item
}

// decrementSellIn has no floor other than the int range; it saturates
// instead of wrapping to a fresh sell by date.
func decrementSellIn(sellIn int) int {
	if sellIn == math.MinInt {
		return sellIn
	}
	return sellIn - 1
}

package types

// LegendaryRule never changes an item. Quality is not clamped either.
type LegendaryRule struct{}

func (_ *LegendaryRule) Category() Category {
	return Legendary
}

func (_ *LegendaryRule) Age(item Item) Item {
	return item
}

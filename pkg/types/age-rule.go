package types

// AgedRule covers items that gain quality with age.
type AgedRule struct{}

func (_ *AgedRule) Category() Category {
	return Aged
}

func (_ *AgedRule) Age(item Item) Item {
	return degrade(item, 1, 2)
}

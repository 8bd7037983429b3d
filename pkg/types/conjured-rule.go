package types

// ConjuredRule degrades twice as fast as OrdinaryRule in both regimes.
type ConjuredRule struct {
	Multiplier int
}

func (_ *ConjuredRule) Category() Category {
	return Conjured
}

func (r *ConjuredRule) Age(item Item) Item {
	return degrade(item, -1*r.Multiplier, -2*r.Multiplier)
}

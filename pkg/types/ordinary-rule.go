package types

type OrdinaryRule struct{}

func (_ *OrdinaryRule) Category() Category {
	return Ordinary
}

func (_ *OrdinaryRule) Age(item Item) Item {
	return degrade(item, -1, -2)
}

package types

func init() {
	Register(&OrdinaryRule{})
	Register(&AgedRule{})
	Register(&LegendaryRule{})
	Register(&BackstageRule{CloseDays: 11, VeryCloseDays: 6})
	Register(&ConjuredRule{Multiplier: 2})
}

// Age advances a single item by one day.
func Age(item Item) Item {
	c := item.Category()
	item.category, item.resolvedFor = c, item.Name
	return RuleFor(c).Age(item)
}

// UpdateInventory advances every item by one day. The input is not
// modified; the result has the same length and order.
func UpdateInventory(items []Item) []Item {
	next := make([]Item, len(items))
	for i, item := range items {
		next[i] = Age(item)
	}
	return next
}

// UpdateInventoryDays applies UpdateInventory days times. Zero or negative
// days returns a copy of items.
func UpdateInventoryDays(items []Item, days int) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	for range max(days, 0) {
		next = UpdateInventory(next)
	}
	return next
}

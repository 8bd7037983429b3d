package types

// DefaultItems is the inventory a fresh shop starts with.
func DefaultItems() []Item {
	return []Item{
		NewItem("+5 Dexterity Vest", 10, 20),
		NewItem(AgedBrieName, 2, 0),
		NewItem("Elixir of the Mongoose", 5, 7),
		NewItem(SulfurasName, 0, 80),
		NewItem(SulfurasName, -1, 80),
		NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20),
		NewItem("Backstage passes to a TAFKAL80ETC concert", 10, 49),
		NewItem("Backstage passes to a TAFKAL80ETC concert", 5, 49),
		NewItem("Conjured Mana Cake", 3, 6),
	}
}

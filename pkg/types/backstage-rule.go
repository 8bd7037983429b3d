package types

// BackstageRule raises quality faster as the concert approaches and zeroes
// it once the concert has passed.
type BackstageRule struct {
	CloseDays     int
	VeryCloseDays int
}

func (_ *BackstageRule) Category() Category {
	return Backstage
}

func (r *BackstageRule) Age(item Item) Item {
	increase := 1
	if item.SellIn < r.CloseDays {
		increase = 2
	}
	if item.SellIn < r.VeryCloseDays {
		increase = 3
	}
	item.Quality = clampQuality(item.Quality + increase)
	item.SellIn = decrementSellIn(item.SellIn)
	if item.SellIn < 0 {
		item.Quality = 0
	}
	return item
}

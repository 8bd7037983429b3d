package types

import (
	"fmt"

	"github.com/matst80/gilded-rose/pkg/common/jsoncompat"
)

const (
	MinQuality = 0
	MaxQuality = 50
)

// Item is one stocked product. Items are values: an update produces a new
// Item and never touches the old one.
type Item struct {
	Name    string
	SellIn  int
	Quality int

	category    Category
	resolvedFor string // name category was resolved from
}

func NewItem(name string, sellIn, quality int) Item {
	return Item{
		Name:        name,
		SellIn:      sellIn,
		Quality:     quality,
		category:    ResolveCategory(name),
		resolvedFor: name,
	}
}

// Category returns the resolved category. Items built as struct literals, or
// renamed after construction, are resolved again from the current name.
func (i Item) Category() Category {
	if i.category == unresolved || i.resolvedFor != i.Name {
		return ResolveCategory(i.Name)
	}
	return i.category
}

func (i Item) IsLegendary() bool {
	return i.Category() == Legendary
}

func (i Item) IsExpired() bool {
	return i.SellIn < 0
}

func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

type itemJson struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	return jsoncompat.Marshal(itemJson{
		Name:    i.Name,
		SellIn:  i.SellIn,
		Quality: i.Quality,
	})
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var raw itemJson
	if err := jsoncompat.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = NewItem(raw.Name, raw.SellIn, raw.Quality)
	return nil
}

// Items is the wire envelope used by the API and storage.
type Items struct {
	Items []Item `json:"items"`
}

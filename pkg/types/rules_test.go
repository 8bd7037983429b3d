package types

import (
	"math"
	"testing"
)

func TestOrdinaryRule_Age(t *testing.T) {
	cases := []struct {
		name     string
		in       Item
		expected Item
	}{
		{"fresh", NewItem("+5 Dexterity Vest", 10, 20), NewItem("+5 Dexterity Vest", 9, 19)},
		{"sell by day still single", NewItem("Elixir of the Mongoose", 0, 7), NewItem("Elixir of the Mongoose", -1, 6)},
		{"expired doubles", NewItem("Elixir of the Mongoose", -1, 6), NewItem("Elixir of the Mongoose", -2, 4)},
		{"floors at zero", NewItem("Elixir of the Mongoose", 3, 0), NewItem("Elixir of the Mongoose", 2, 0)},
		{"expired floors at zero", NewItem("Elixir of the Mongoose", -4, 1), NewItem("Elixir of the Mongoose", -5, 0)},
		{"over cap is clamped", NewItem("Elixir of the Mongoose", 4, 60), NewItem("Elixir of the Mongoose", 3, 50)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Age(tc.in)
			if got != tc.expected {
				t.Errorf("Expected %v but got %v", tc.expected, got)
			}
		})
	}
}

func TestAgedRule_Age(t *testing.T) {
	cases := []struct {
		name     string
		in       Item
		expected Item
	}{
		{"fresh", NewItem(AgedBrieName, 2, 0), NewItem(AgedBrieName, 1, 1)},
		{"sell by day still single", NewItem(AgedBrieName, 0, 10), NewItem(AgedBrieName, -1, 11)},
		{"expired doubles", NewItem(AgedBrieName, -1, 11), NewItem(AgedBrieName, -2, 13)},
		{"caps at fifty", NewItem(AgedBrieName, 5, 50), NewItem(AgedBrieName, 4, 50)},
		{"expired caps at fifty", NewItem(AgedBrieName, -3, 49), NewItem(AgedBrieName, -4, 50)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Age(tc.in)
			if got != tc.expected {
				t.Errorf("Expected %v but got %v", tc.expected, got)
			}
		})
	}
}

func TestLegendaryRule_Age(t *testing.T) {
	for _, in := range []Item{
		NewItem(SulfurasName, 0, 80),
		NewItem(SulfurasName, -1, 80),
		NewItem(SulfurasName, 10, 3),
		NewItem(SulfurasName, 0, -7),
	} {
		got := Age(in)
		if got != in {
			t.Errorf("Expected %v to be untouched but got %v", in, got)
		}
	}
}

func TestBackstageRule_Age(t *testing.T) {
	const name = "Backstage passes to a TAFKAL80ETC concert"
	cases := []struct {
		name     string
		in       Item
		expected Item
	}{
		{"far away", NewItem(name, 15, 20), NewItem(name, 14, 21)},
		{"eleven days is still far", NewItem(name, 11, 20), NewItem(name, 10, 21)},
		{"ten days", NewItem(name, 10, 20), NewItem(name, 9, 22)},
		{"six days", NewItem(name, 6, 20), NewItem(name, 5, 22)},
		{"five days", NewItem(name, 5, 20), NewItem(name, 4, 23)},
		{"concert day", NewItem(name, 1, 20), NewItem(name, 0, 23)},
		{"after concert", NewItem(name, 0, 20), NewItem(name, -1, 0)},
		{"long after concert", NewItem(name, -5, 0), NewItem(name, -6, 0)},
		{"capped not 52", NewItem(BackstageName, 5, 49), NewItem(BackstageName, 4, 50)},
		{"capped at ten days", NewItem(name, 10, 49), NewItem(name, 9, 50)},
		{"drop overrides cap", NewItem(name, 0, 50), NewItem(name, -1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Age(tc.in)
			if got != tc.expected {
				t.Errorf("Expected %v but got %v", tc.expected, got)
			}
		})
	}
}

func TestConjuredRule_Age(t *testing.T) {
	const name = "Conjured Mana Cake"
	cases := []struct {
		name     string
		in       Item
		expected Item
	}{
		{"fresh", NewItem(name, 3, 6), NewItem(name, 2, 4)},
		{"sell by day", NewItem(name, 0, 6), NewItem(name, -1, 4)},
		{"expired", NewItem(name, -1, 10), NewItem(name, -2, 6)},
		{"floors at zero", NewItem(name, 2, 1), NewItem(name, 1, 0)},
		{"expired floors at zero", NewItem(name, -1, 3), NewItem(name, -2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Age(tc.in)
			if got != tc.expected {
				t.Errorf("Expected %v but got %v", tc.expected, got)
			}
		})
	}
}

func TestRuleFor_AllCategoriesRegistered(t *testing.T) {
	for _, c := range []Category{Ordinary, Aged, Legendary, Backstage, Conjured} {
		if RuleFor(c).Category() != c {
			t.Errorf("Expected rule for %s to report its own category", c)
		}
	}
}

func TestRuleFor_PanicsOnUnresolved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for unresolved category")
		}
	}()
	RuleFor(unresolved)
}

func TestAge_SellInSaturatesAtMinInt(t *testing.T) {
	cases := []struct {
		name     string
		in       Item
		expected Item
	}{
		{"ordinary stays expired", NewItem("Elixir of the Mongoose", math.MinInt+1, 10), NewItem("Elixir of the Mongoose", math.MinInt, 6)},
		{"aged stays expired", NewItem(AgedBrieName, math.MinInt, 10), NewItem(AgedBrieName, math.MinInt, 14)},
		{"backstage stays worthless", NewItem(BackstageName, math.MinInt, 10), NewItem(BackstageName, math.MinInt, 0)},
		{"conjured stays expired", NewItem("Conjured Mana Cake", math.MinInt, 10), NewItem("Conjured Mana Cake", math.MinInt, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Age(Age(tc.in))
			if got != tc.expected {
				t.Errorf("Expected %v but got %v", tc.expected, got)
			}
		})
	}
}

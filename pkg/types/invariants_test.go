package types

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		item Item
		err  error
	}{
		{NewItem("Vest", 1, 0), nil},
		{NewItem("Vest", 1, 50), nil},
		{NewItem("Vest", 1, 51), ErrQualityOutOfRange},
		{NewItem("Vest", 1, -1), ErrQualityOutOfRange},
		{NewItem(SulfurasName, 0, 80), nil},
		{NewItem("  ", 0, 10), ErrMissingName},
	}
	for _, tc := range cases {
		err := Validate(tc.item)
		if tc.err == nil && err != nil {
			t.Errorf("Expected %v to be valid, got %v", tc.item, err)
		}
		if tc.err != nil && !errors.Is(err, tc.err) {
			t.Errorf("Expected %v for %v, got %v", tc.err, tc.item, err)
		}
	}
}

func TestValidateItems_JoinsErrors(t *testing.T) {
	err := ValidateItems([]Item{NewItem("", 0, 1), NewItem("Vest", 0, 99)})
	if !errors.Is(err, ErrMissingName) || !errors.Is(err, ErrQualityOutOfRange) {
		t.Fatalf("Expected both errors, got %v", err)
	}
}

func TestCheckInvariants(t *testing.T) {
	before := []Item{NewItem(SulfurasName, 0, 80), NewItem("Vest", 1, 10)}

	if err := CheckInvariants(before, before[:1]); !errors.Is(err, ErrLengthChanged) {
		t.Errorf("Expected ErrLengthChanged, got %v", err)
	}
	if err := CheckInvariants(before, []Item{NewItem(SulfurasName, -1, 80), NewItem("Vest", 0, 9)}); !errors.Is(err, ErrLegendaryChanged) {
		t.Errorf("Expected ErrLegendaryChanged, got %v", err)
	}
	if err := CheckInvariants(before, []Item{NewItem(SulfurasName, 0, 80), NewItem("Coat", 0, 9)}); !errors.Is(err, ErrIdentityChanged) {
		t.Errorf("Expected ErrIdentityChanged, got %v", err)
	}
	if err := CheckInvariants(before, []Item{NewItem(SulfurasName, 0, 80), NewItem("Vest", 0, -1)}); !errors.Is(err, ErrQualityOutOfRange) {
		t.Errorf("Expected ErrQualityOutOfRange, got %v", err)
	}
	if err := CheckInvariants(before, UpdateInventory(before)); err != nil {
		t.Errorf("Expected no violations, got %v", err)
	}
}

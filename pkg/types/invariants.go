package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrQualityOutOfRange = errors.New("quality out of range")
	ErrLegendaryChanged  = errors.New("legendary item changed")
	ErrIdentityChanged   = errors.New("item identity changed")
	ErrLengthChanged     = errors.New("inventory length changed")
	ErrMissingName       = errors.New("item name is required")
)

// Validate checks a single item against the quality bound. Legendary items
// are exempt.
func Validate(item Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrMissingName
	}
	if item.IsLegendary() {
		return nil
	}
	if item.Quality < MinQuality || item.Quality > MaxQuality {
		return fmt.Errorf("%w: %q has quality %d", ErrQualityOutOfRange, item.Name, item.Quality)
	}
	return nil
}

// ValidateItems rejects malformed input before it reaches the engine.
func ValidateItems(items []Item) error {
	var errs []error
	for idx, item := range items {
		if err := Validate(item); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", idx, err))
		}
	}
	return errors.Join(errs...)
}

// CheckInvariants compares one day's items with the next day's and reports
// every violated invariant. A non-nil result is a defect in a rule.
func CheckInvariants(before, after []Item) error {
	if len(before) != len(after) {
		return fmt.Errorf("%w: %d != %d", ErrLengthChanged, len(before), len(after))
	}
	var errs []error
	for idx := range before {
		prev, next := before[idx], after[idx]
		if prev.Name != next.Name {
			errs = append(errs, fmt.Errorf("%w: position %d %q became %q", ErrIdentityChanged, idx, prev.Name, next.Name))
			continue
		}
		if next.IsLegendary() {
			if prev.SellIn != next.SellIn || prev.Quality != next.Quality {
				errs = append(errs, fmt.Errorf("%w: %s -> %s", ErrLegendaryChanged, prev, next))
			}
			continue
		}
		if next.Quality < MinQuality || next.Quality > MaxQuality {
			errs = append(errs, fmt.Errorf("%w: %q has quality %d", ErrQualityOutOfRange, next.Name, next.Quality))
		}
	}
	return errors.Join(errs...)
}

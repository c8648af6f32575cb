package domain

import "github.com/royalrinse/booking-service/pkg/types"

// ServiceTier is a catalog entry: a named service level with a fixed price.
// Tiers are immutable process-wide configuration loaded at startup.
type ServiceTier struct {
	ID          string
	Title       string
	Price       float64
	Description string
}

// SlotSet is the fixed ordered sequence of daily time slots. The order is
// canonical: availability listings preserve it.
type SlotSet []types.TimeString

// Contains reports whether the slot belongs to the set.
func (s SlotSet) Contains(slot types.TimeString) bool {
	for _, v := range s {
		if v == slot {
			return true
		}
	}
	return false
}

package domain

import (
	"time"

	"github.com/royalrinse/booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// AdminAction is an administrative lifecycle action on a booking
type AdminAction string

const (
	ActionApprove  AdminAction = "approve"
	ActionReject   AdminAction = "reject"
	ActionComplete AdminAction = "complete"
)

// transitionTable maps each admin action to the statuses it may be applied
// from. rejected and completed are terminal: no action leads out of them.
var transitionTable = map[AdminAction][]BookingStatus{
	ActionApprove:  {StatusPending},
	ActionReject:   {StatusPending},
	ActionComplete: {StatusApproved},
}

// targetStatuses maps each admin action to the status it produces.
var targetStatuses = map[AdminAction]BookingStatus{
	ActionApprove:  StatusApproved,
	ActionReject:   StatusRejected,
	ActionComplete: StatusCompleted,
}

// IsValid reports whether the action is one of the known admin actions.
func (a AdminAction) IsValid() bool {
	_, ok := transitionTable[a]
	return ok
}

// AllowedFrom reports whether the action may legally be applied to a
// booking in the given status.
func (a AdminAction) AllowedFrom(status BookingStatus) bool {
	for _, s := range transitionTable[a] {
		if s == status {
			return true
		}
	}
	return false
}

// TargetStatus returns the status the action transitions a booking into.
func (a AdminAction) TargetStatus() BookingStatus {
	return targetStatuses[a]
}

// Booking represents a car-wash appointment. Bookings are never deleted;
// rejected and completed records remain as an audit trail.
type Booking struct {
	ID           int64
	CustomerName string
	UserID       *int64 // nil for walk-in bookings without an account
	Phone        string
	Email        *string
	Tier         string
	Date         time.Time // calendar date, no time component
	TimeSlot     types.TimeString
	Address      string
	Notes        *string
	Status       BookingStatus
	Paid         bool
	Amount       float64 // catalog price at creation time, never recomputed
	CreatedAt    time.Time
}

// OccupiesSlot reports whether the booking blocks its (date, slot) pair
// from being offered to others. Only approved bookings occupy slots;
// pending, rejected and completed ones do not.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusApproved
}

// CanCapturePayment reports whether the payment flag may still be flipped.
// The flag flips false->true at most once, only while the booking is
// pending or approved.
func (b *Booking) CanCapturePayment() bool {
	return !b.Paid && (b.Status == StatusPending || b.Status == StatusApproved)
}

// IsTerminal reports whether the booking is in a terminal status.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCompleted
}

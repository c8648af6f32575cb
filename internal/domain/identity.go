package domain

// Actor is the request-scoped authenticated identity passed into every
// operation: an administrator or a customer account. Anonymous callers
// never reach the core; the API layer rejects them first.
type Actor struct {
	IsAdmin bool
	UserID  int64
}

// CanAccessBookingsOf reports whether the actor may read bookings owned by
// the given account. Admins may read anything; customers only their own.
func (a Actor) CanAccessBookingsOf(ownerID *int64) bool {
	if a.IsAdmin {
		return true
	}
	return ownerID != nil && *ownerID == a.UserID
}

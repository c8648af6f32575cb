package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxNameLength    = 140
	MaxPhoneLength   = 60
	MaxAddressLength = 255

	// Placeholder payment instrument shape checks. Not real validation.
	MinCardNumberLength   = 12
	MinSecurityCodeLength = 3
)

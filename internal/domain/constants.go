package domain

// DateFormat is the wire format for calendar dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Business validation constants
const (
	MaxNameLength  = 200
	MaxPhoneLength = 32
)

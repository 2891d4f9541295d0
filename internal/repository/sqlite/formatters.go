package sqlite

import (
	"time"
)

// DateLayout is the text form of CREATION_DATE and DUE_DATE
const DateLayout = "2006-01-02"

// DateOnly strips the clock from t, keeping its calendar date at midnight UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDateForDB formats a date as YYYY-MM-DD
func FormatDateForDB(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtrForDB formats a *time.Time as YYYY-MM-DD, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a YYYY-MM-DD string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatBoolForDB stores booleans as 0/1
func FormatBoolForDB(b bool) int {
	if b {
		return 1
	}
	return 0
}

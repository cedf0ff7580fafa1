package domain

import (
	"strconv"
	"time"
)

// Sentinels used when the source record omits a field.
const (
	NotAvailable    = "N/A"
	UnknownLocation = "Remote/Unspecified"
)

// OpenedAtLayout is the timestamp format Greenhouse writes for opened_at.
const OpenedAtLayout = "2006-01-02T15:04:05.000Z"

// Role is one open job posting, enriched with a derived studio tag.
// It lives only for the duration of a run; nothing is persisted.
type Role struct {
	JobID        int64
	Title        string
	Department   string
	Location     string
	Studio       string
	OpenedAt     string // raw opened_at, "" when the source never set it
	DaysOpen     *int   // nil when opened_at is absent or unparseable
	Recruiters   string
	Coordinators string
}

func FillTitle(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func FillDepartment(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func FillLocation(s string) string {
	if s == "" {
		return UnknownLocation
	}
	return s
}

// DaysOpen returns the whole days between opened_at and now (UTC),
// or nil when the timestamp is missing or doesn't parse.
func DaysOpen(openedAt string, now time.Time) *int {
	if openedAt == "" {
		return nil
	}
	t, err := time.Parse(OpenedAtLayout, openedAt)
	if err != nil {
		return nil
	}
	d := int(now.UTC().Sub(t) / (24 * time.Hour))
	return &d
}

// DaysOpenText renders the days-open value for a text column.
func DaysOpenText(d *int) string {
	if d == nil {
		return NotAvailable
	}
	return strconv.Itoa(*d)
}

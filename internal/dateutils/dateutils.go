// Package dateutils provides the date parsing and formatting used by the
// normalizer and the export codecs.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutOFXDate  = "20060102"
	DateLayoutOFXStamp = "20060102150405"
)

// CommonFormats is the ordered list of layouts tried by ParseDate. RFC 3339
// comes first because provider timestamps use it.
var CommonFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse empty date")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CalendarDate reduces a provider timestamp to its calendar date, read in
// the timestamp's own offset and returned as midnight UTC. It never fails:
// a value that cannot be read at all yields the zero time.
func CalendarDate(occurredAt string) time.Time {
	if t, _, err := ParseDate(occurredAt); err == nil {
		return civil(t)
	}

	clean := CleanDateString(occurredAt)
	if len(clean) >= len(DateLayoutISO) {
		if t, err := time.Parse(DateLayoutISO, clean[:len(DateLayoutISO)]); err == nil {
			return civil(t)
		}
	}

	return time.Time{}
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToOFXDate formats the calendar date as YYYYMMDD.
func ToOFXDate(date time.Time) string {
	return date.Format(DateLayoutOFXDate)
}

// ToOFXTimestamp formats t in UTC as YYYYMMDDHHMMSS.
func ToOFXTimestamp(t time.Time) string {
	return t.UTC().Format(DateLayoutOFXStamp)
}

// CompareDates compares the calendar dates of two times:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = civil(date1)
	date2 = civil(date2)

	switch {
	case date1.Before(date2):
		return -1
	case date1.After(date2):
		return 1
	default:
		return 0
	}
}

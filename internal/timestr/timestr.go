// Package timestr parses human-entered clock strings ("5:30 PM", "13:45")
// into absolute instants anchored to a caller-supplied reference day.
//
// Jamat scheduling and alarm scheduling both go through this package so the
// two agree on AM/PM handling and on the failure policy: an unparseable
// string is ErrInvalidTimeFormat and means "no time available", never
// midnight.
package timestr

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a string does not contain a
// recognizable hour:minute pair.
var ErrInvalidTimeFormat = errors.New("invalid time format")

var clockPattern = regexp.MustCompile(`(\d+):(\d+)\s*([AaPp][Mm])?`)

// ParseClock parses raw into an instant on the given reference day in loc.
// Accepts "H:MM" (24-hour) and "H:MM AM/PM"; seconds are zeroed.
func ParseClock(raw string, day time.Time, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	var hour, minute int

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		h, err1 := strconv.Atoi(m[1])
		mi, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return time.Time{}, ErrInvalidTimeFormat
		}
		hour, minute = h, mi

		switch strings.ToUpper(m[3]) {
		case "PM":
			if hour < 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
	} else {
		// Bare "H:M" without a full numeric match, e.g. odd whitespace.
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return time.Time{}, ErrInvalidTimeFormat
		}
		h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		mi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return time.Time{}, ErrInvalidTimeFormat
		}
		hour, minute = h, mi
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

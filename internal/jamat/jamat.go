// Package jamat selects the next congregational prayer from a mosque's
// caretaker-reported time strings. These are human-entered times, not
// astronomical ones, so selection is independent of the prayer engine.
package jamat

import (
	"errors"
	"time"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/timestr"
)

// Next describes the upcoming jamat for one mosque.
type Next struct {
	Name      string        `json:"name"`
	Time      time.Time     `json:"time"`
	Remaining time.Duration `json:"remaining"`
}

type labeled struct {
	name string
	raw  string
}

// sequence returns the jamat entries in display order. Jumuah rides along
// with the dailies; an empty string simply never qualifies.
func sequence(t model.JamatTimes) []labeled {
	return []labeled{
		{"Fajr", t.Fajr},
		{"Dhuhr", t.Dhuhr},
		{"Asr", t.Asr},
		{"Sunset", t.Sunset},
		{"Isha", t.Isha},
		{"Jumuah", t.Jumuah},
	}
}

// NextJamat returns the jamat with the smallest strictly-positive remaining
// time relative to now. Entries that are empty or unparseable are excluded,
// never treated as zero. When nothing qualifies today, Fajr rolls to
// tomorrow; when Fajr itself has no usable time the second return is false
// and callers must omit the countdown.
func NextJamat(times model.JamatTimes, now time.Time, loc *time.Location) (Next, bool) {
	var best Next
	found := false

	for _, entry := range sequence(times) {
		at, err := timestr.ParseClock(entry.raw, now, loc)
		if err != nil {
			if !errors.Is(err, timestr.ErrInvalidTimeFormat) {
				return Next{}, false
			}
			continue
		}

		remaining := at.Sub(now)
		if remaining <= 0 {
			continue
		}
		if !found || remaining < best.Remaining {
			best = Next{Name: entry.name, Time: at, Remaining: remaining}
			found = true
		}
	}
	if found {
		return best, true
	}

	// Everything has passed today; the next jamat is tomorrow's Fajr.
	fajr, err := timestr.ParseClock(times.Fajr, now, loc)
	if err != nil {
		return Next{}, false
	}
	fajr = fajr.AddDate(0, 0, 1)
	return Next{Name: "Fajr", Time: fajr, Remaining: fajr.Sub(now)}, true
}

// Package prayer computes the daily canonical prayer instants for a
// coordinate and calculation method, and selects the next upcoming prayer
// with day-rollover handling.
package prayer

import (
	"fmt"
	"time"

	"github.com/qiblatech/minaret/internal/astro"
	"github.com/qiblatech/minaret/internal/model"
)

// Canonical event names in chronological order. Sunset doubles as the
// Maghrib label throughout the system.
const (
	NameFajr    = "Fajr"
	NameSunrise = "Sunrise"
	NameDhuhr   = "Dhuhr"
	NameAsr     = "Asr"
	NameSunset  = "Sunset"
	NameIsha    = "Isha"
)

// Order is the fixed canonical iteration order for a day's events.
var Order = []string{NameFajr, NameSunrise, NameDhuhr, NameAsr, NameSunset, NameIsha}

// Actionable reports whether the named event is a prayer in the religious
// sense. Sunrise is part of the iterated sequence but is not actionable;
// views that only want prayers must filter it out.
func Actionable(name string) bool {
	return name != NameSunrise
}

// Event is one named instant within a Set.
type Event struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
}

// Set holds the six canonical instants for one coordinate and calendar day.
// A Set is never mutated; tomorrow's times are a freshly computed Set.
type Set struct {
	Fajr    time.Time `json:"fajr"`
	Sunrise time.Time `json:"sunrise"`
	Dhuhr   time.Time `json:"dhuhr"`
	Asr     time.Time `json:"asr"`
	Sunset  time.Time `json:"sunset"`
	Isha    time.Time `json:"isha"`

	Coordinate model.Coordinate `json:"coordinate"`
	Method     Method           `json:"method"`
	Day        time.Time        `json:"day"`
}

// Events returns the set in canonical order.
func (s Set) Events() []Event {
	return []Event{
		{NameFajr, s.Fajr},
		{NameSunrise, s.Sunrise},
		{NameDhuhr, s.Dhuhr},
		{NameAsr, s.Asr},
		{NameSunset, s.Sunset},
		{NameIsha, s.Isha},
	}
}

// Next describes the upcoming prayer relative to some instant. Remaining is
// strictly positive by construction.
type Next struct {
	Name      string        `json:"name"`
	Time      time.Time     `json:"time"`
	Remaining time.Duration `json:"remaining"`
}

// ComputeSet computes the canonical instants for the given coordinate and
// calendar day. Pure function of its inputs; no I/O. Results are expressed
// in loc.
func ComputeSet(coord model.Coordinate, day time.Time, method Method, loc *time.Location) Set {
	p, ok := methodParams[method]
	if !ok {
		p = methodParams[MWL]
	}

	lat, lon := coord.Latitude, coord.Longitude
	rise, set := astro.SunriseSunset(lat, lon, day)

	maghrib := set
	if p.maghribAngle > 0 {
		maghrib = astro.Twilight(lat, lon, day, p.maghribAngle, false)
	}

	isha := maghrib.Add(p.ishaInterval)
	if p.ishaInterval == 0 {
		isha = astro.Twilight(lat, lon, day, p.ishaAngle, false)
	}

	return Set{
		Fajr:       astro.Twilight(lat, lon, day, p.fajrAngle, true).In(loc),
		Sunrise:    rise.In(loc),
		Dhuhr:      astro.SolarNoon(lat, lon, day).In(loc),
		Asr:        astro.AsrTime(lat, lon, day, 1).In(loc),
		Sunset:     maghrib.In(loc),
		Isha:       isha.In(loc),
		Coordinate: coord,
		Method:     method,
		Day:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc),
	}
}

// NextPrayer returns the first event in canonical order strictly after now.
// When every event of the day has passed, it recomputes the set for the next
// calendar day at the same coordinate and method and returns that day's
// Fajr. Remaining is always positive.
func NextPrayer(s Set, now time.Time) Next {
	for _, e := range s.Events() {
		if e.Time.After(now) {
			return Next{Name: e.Name, Time: e.Time, Remaining: e.Time.Sub(now)}
		}
	}

	tomorrow := ComputeSet(s.Coordinate, s.Day.AddDate(0, 0, 1), s.Method, s.Day.Location())
	return Next{Name: NameFajr, Time: tomorrow.Fajr, Remaining: tomorrow.Fajr.Sub(now)}
}

// FormatRemaining renders a countdown: "2h 5m" above an hour, "14m 30s"
// above a minute, "42s" below.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0s"
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, sec)
	default:
		return fmt.Sprintf("%ds", sec)
	}
}

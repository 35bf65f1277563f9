package prayer

import (
	"fmt"
	"time"
)

// Method identifies a named calculation-parameter set.
type Method string

const (
	MWL     Method = "MWL"
	ISNA    Method = "ISNA"
	Egypt   Method = "Egypt"
	Makkah  Method = "Makkah"
	Karachi Method = "Karachi"
	Tehran  Method = "Tehran"
)

// Methods lists every supported calculation method with its display name.
var Methods = []struct {
	ID   Method
	Name string
}{
	{MWL, "Muslim World League"},
	{ISNA, "Islamic Society of North America"},
	{Egypt, "Egyptian General Authority"},
	{Makkah, "Umm Al-Qura, Makkah"},
	{Karachi, "University of Islamic Sciences, Karachi"},
	{Tehran, "Institute of Geophysics, Tehran"},
}

// params holds the twilight geometry for one method. When ishaInterval is
// non-zero, Isha is a fixed offset after sunset instead of an angle crossing.
type params struct {
	fajrAngle    float64
	ishaAngle    float64
	maghribAngle float64 // 0 means Maghrib is at sunset
	ishaInterval time.Duration
}

var methodParams = map[Method]params{
	MWL:     {fajrAngle: 18, ishaAngle: 17},
	ISNA:    {fajrAngle: 15, ishaAngle: 15},
	Egypt:   {fajrAngle: 19.5, ishaAngle: 17.5},
	Makkah:  {fajrAngle: 18.5, ishaInterval: 90 * time.Minute},
	Karachi: {fajrAngle: 18, ishaAngle: 18},
	Tehran:  {fajrAngle: 17.7, ishaAngle: 14, maghribAngle: 4.5},
}

// ParseMethod validates a method identifier string. An empty string selects
// the default (MWL); anything unrecognized is an error.
func ParseMethod(s string) (Method, error) {
	if s == "" {
		return MWL, nil
	}
	m := Method(s)
	if _, ok := methodParams[m]; !ok {
		return "", fmt.Errorf("unknown calculation method %q", s)
	}
	return m, nil
}

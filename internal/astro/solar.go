// Package astro supplies the solar geometry behind prayer-time computation:
// sunrise/sunset (delegated to go-sunrise), apparent solar noon, twilight
// crossings for a given depression angle, and the afternoon shadow-length
// time used for Asr. Everything is a pure function of coordinate and date.
package astro

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunriseSunset returns the sunrise and sunset instants (UTC) for the given
// position and calendar date.
func SunriseSunset(lat, lon float64, date time.Time) (rise, set time.Time) {
	return sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
}

// SolarNoon returns the apparent solar noon, taken as the midpoint between
// sunrise and sunset. The equation of time is folded in by construction.
func SolarNoon(lat, lon float64, date time.Time) time.Time {
	rise, set := SunriseSunset(lat, lon, date)
	return rise.Add(set.Sub(rise) / 2)
}

// declination returns the solar declination in radians for the given date
// (Cooper's approximation).
func declination(date time.Time) float64 {
	n := float64(date.YearDay())
	return toRad(23.45) * math.Sin(toRad(360.0/365.0*(284.0+n)))
}

// hourAngleOffset returns the duration between solar noon and the moment the
// sun's altitude crosses altitudeDeg (negative below the horizon). The result
// is clamped to half a day when the crossing never occurs at that latitude.
func hourAngleOffset(lat, altitudeDeg float64, date time.Time) time.Duration {
	phi := toRad(lat)
	delta := declination(date)

	cosH := (math.Sin(toRad(altitudeDeg)) - math.Sin(phi)*math.Sin(delta)) /
		(math.Cos(phi) * math.Cos(delta))
	if cosH > 1 {
		cosH = 1
	} else if cosH < -1 {
		cosH = -1
	}

	hours := toDeg(math.Acos(cosH)) / 15.0
	return time.Duration(hours * float64(time.Hour))
}

// Twilight returns the instant the sun reaches angleDeg below the horizon,
// before solar noon when morning is true, after it otherwise.
func Twilight(lat, lon float64, date time.Time, angleDeg float64, morning bool) time.Time {
	noon := SolarNoon(lat, lon, date)
	offset := hourAngleOffset(lat, -angleDeg, date)
	if morning {
		return noon.Add(-offset)
	}
	return noon.Add(offset)
}

// AsrTime returns the instant the shadow of an object equals shadowFactor
// times its height plus its noon shadow. shadowFactor 1 is the standard
// (Shafi) convention, 2 the Hanafi one.
func AsrTime(lat, lon float64, date time.Time, shadowFactor float64) time.Time {
	phi := toRad(lat)
	delta := declination(date)

	// Altitude whose cotangent is shadowFactor + tan|phi - delta|.
	altitude := math.Atan(1.0 / (shadowFactor + math.Tan(math.Abs(phi-delta))))

	noon := SolarNoon(lat, lon, date)
	return noon.Add(hourAngleOffset(lat, toDeg(altitude), date))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

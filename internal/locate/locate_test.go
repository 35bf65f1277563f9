package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/settings"
)

func TestResolve_QueryWins(t *testing.T) {
	q := &model.Coordinate{Latitude: 31.5, Longitude: 74.3}
	got, src := Resolve(q, settings.Defaults())
	assert.Equal(t, *q, got)
	assert.Equal(t, SourceQuery, src)
}

func TestResolve_InvalidQueryFallsBack(t *testing.T) {
	q := &model.Coordinate{Latitude: 91, Longitude: 0}
	got, src := Resolve(q, settings.Defaults())
	assert.Equal(t, model.DefaultCoordinate, got)
	assert.Equal(t, SourceDefault, src)
}

func TestResolve_ManualPreference(t *testing.T) {
	lat, lon := 21.4225, 39.8262
	prefs := settings.Defaults()
	prefs.Location.AutoDetect = false
	prefs.Location.ManualLat = &lat
	prefs.Location.ManualLon = &lon

	got, src := Resolve(nil, prefs)
	assert.Equal(t, model.Coordinate{Latitude: lat, Longitude: lon}, got)
	assert.Equal(t, SourceManual, src)
}

func TestResolve_DefaultWhenNothingUsable(t *testing.T) {
	got, src := Resolve(nil, settings.Defaults())
	assert.Equal(t, model.DefaultCoordinate, got)
	assert.Equal(t, SourceDefault, src)
	assert.Equal(t, 24.8015, got.Latitude)
	assert.Equal(t, 67.0785, got.Longitude)
}

// Package locate decides the reference coordinate for a request. Device
// geolocation happens on the client; the server sees either an explicit
// coordinate, a manual preference, or nothing, and the fallback chain must
// complete synchronously with no I/O so the app always reaches a usable
// state.
package locate

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
)

// ErrPositionUnavailable means the client supplied no usable position.
var ErrPositionUnavailable = errors.New("position unavailable")

// Source records where a resolved coordinate came from.
type Source string

const (
	SourceQuery   Source = "query"
	SourceManual  Source = "manual"
	SourceDefault Source = "default"
)

// Resolve picks the coordinate to use: an explicit valid query coordinate
// wins; otherwise a manual location preference; otherwise the deterministic
// default. The default path is the PositionUnavailable fallback and is
// surfaced via SourceDefault so callers can show a notice.
func Resolve(query *model.Coordinate, prefs model.Settings) (model.Coordinate, Source) {
	if query != nil && query.Valid() {
		return *query, SourceQuery
	}

	loc := prefs.Location
	if !loc.AutoDetect && loc.ManualLat != nil && loc.ManualLon != nil {
		manual := model.Coordinate{Latitude: *loc.ManualLat, Longitude: *loc.ManualLon}
		if manual.Valid() {
			return manual, SourceManual
		}
	}

	log.Info().Msg("position unavailable, using default coordinate")
	return model.DefaultCoordinate, SourceDefault
}

// Package rank orders mosque records by distance from a reference point.
package rank

import (
	"sort"

	"github.com/qiblatech/minaret/internal/geo"
	"github.com/qiblatech/minaret/internal/model"
)

// ByDistance attaches the great-circle distance from reference to every
// record and returns them sorted ascending. The sort is stable: records at
// equal distance keep their input order. Pure and deterministic; the input
// slice is not modified.
func ByDistance(mosques []model.Mosque, reference model.Coordinate) []model.RankedMosque {
	ranked := make([]model.RankedMosque, 0, len(mosques))
	for _, m := range mosques {
		d := geo.DistanceKm(reference, m.Coordinate())
		ranked = append(ranked, model.RankedMosque{
			Mosque:            m,
			DistanceKm:        d,
			FormattedDistance: geo.FormatDistance(d),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qiblatech/minaret/internal/geo"
	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/public/packets"
	"github.com/qiblatech/minaret/internal/jamat"
	"github.com/qiblatech/minaret/internal/locate"
	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/prayer"
	"github.com/qiblatech/minaret/internal/rank"
)

// GET /api/mosques
func (c *Controller) listMosques(ctx *gin.Context) (any, *api.Error) {
	prefs, err := c.prefs.Load(ctx.Request.Context(), clientID(ctx))
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	coord, source := locate.Resolve(queryCoordinate(ctx), prefs)
	ranked := rank.ByDistance(c.directoryMosques(), coord)

	return packets.MosqueListResponse{
		Count:          len(ranked),
		LocationSource: string(source),
		Mosques:        ranked,
	}, nil
}

// GET /api/mosques/:id
func (c *Controller) getMosque(ctx *gin.Context) (any, *api.Error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	mosque, apiErr := c.findMosque(id)
	if apiErr != nil {
		return nil, apiErr
	}

	out := packets.MosqueDetailResponse{Mosque: *mosque}

	prefs, err := c.prefs.Load(ctx.Request.Context(), clientID(ctx))
	if err == nil {
		if myID, ok, _ := c.prefs.MyMosque(ctx.Request.Context(), clientID(ctx)); ok {
			out.IsMyMosque = myID == mosque.ID
		}
		coord, _ := locate.Resolve(queryCoordinate(ctx), prefs)
		d := geo.DistanceKm(coord, mosque.Coordinate())
		out.DistanceKm = &d
		out.FormattedDistance = geo.FormatDistance(d)
	}

	now := time.Now().In(c.loc)
	if next, ok := jamat.NextJamat(mosque.JamatTimes, now, c.loc); ok {
		out.NextJamat = &packets.NextJamatResponse{
			Name:             next.Name,
			Time:             next.Time.Format(time.RFC3339),
			Display:          next.Time.Format(clockFace),
			Remaining:        prayer.FormatRemaining(next.Remaining),
			RemainingSeconds: int64(next.Remaining.Seconds()),
		}
	}
	// A nil NextJamat is the defined empty state: the view omits the
	// countdown section.

	return out, nil
}

// findMosque looks up one record in the store, falling back to the bundled
// dataset the same way listings do.
func (c *Controller) findMosque(id int) (*model.Mosque, *api.Error) {
	mosque, err := c.store.GetMosqueByID(id)
	if err == nil {
		return mosque, nil
	}
	for _, m := range c.directoryMosques() {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
}

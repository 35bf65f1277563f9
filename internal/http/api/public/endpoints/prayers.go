package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/public/packets"
	"github.com/qiblatech/minaret/internal/locate"
	"github.com/qiblatech/minaret/internal/prayer"
)

const clockFace = "3:04 PM"

// GET /api/prayers
func (c *Controller) listPrayers(ctx *gin.Context) (any, *api.Error) {
	prefs, err := c.prefs.Load(ctx.Request.Context(), clientID(ctx))
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	method, err := prayer.ParseMethod(ctx.DefaultQuery("method", prefs.CalculationMethod))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	coord, source := locate.Resolve(queryCoordinate(ctx), prefs)
	set := prayer.ComputeSet(coord, time.Now().In(c.loc), method, c.loc)

	out := packets.PrayerSetResponse{
		Date:           set.Day.Format("2006-01-02"),
		Method:         string(method),
		Latitude:       coord.Latitude,
		Longitude:      coord.Longitude,
		LocationSource: string(source),
	}
	for _, e := range set.Events() {
		out.Times = append(out.Times, packets.PrayerTimeResponse{
			Name:       e.Name,
			Time:       e.Time.Format(time.RFC3339),
			Display:    e.Time.Format(clockFace),
			Actionable: prayer.Actionable(e.Name),
		})
	}
	return out, nil
}

// GET /api/prayers/next
func (c *Controller) nextPrayer(ctx *gin.Context) (any, *api.Error) {
	prefs, err := c.prefs.Load(ctx.Request.Context(), clientID(ctx))
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	method, err := prayer.ParseMethod(ctx.DefaultQuery("method", prefs.CalculationMethod))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	coord, _ := locate.Resolve(queryCoordinate(ctx), prefs)
	now := time.Now().In(c.loc)
	set := prayer.ComputeSet(coord, now, method, c.loc)

	next := prayer.NextPrayer(set, now)
	// Sunrise is part of the sequence but is not a prayer; skip it when the
	// caller asks for actionable prayers only.
	if ctx.Query("actionable") == "true" && !prayer.Actionable(next.Name) {
		next = prayer.NextPrayer(set, next.Time)
	}

	return packets.NextPrayerResponse{
		Name:             next.Name,
		Time:             next.Time.Format(time.RFC3339),
		Display:          next.Time.Format(clockFace),
		Remaining:        prayer.FormatRemaining(next.Remaining),
		RemainingSeconds: int64(next.Remaining.Seconds()),
	}, nil
}

// GET /api/prayers/methods
func (c *Controller) listMethods(ctx *gin.Context) (any, *api.Error) {
	type methodResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]methodResponse, 0, len(prayer.Methods))
	for _, m := range prayer.Methods {
		out = append(out, methodResponse{ID: string(m.ID), Name: m.Name})
	}
	return out, nil
}

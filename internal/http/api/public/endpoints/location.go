package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/public/packets"
	"github.com/qiblatech/minaret/internal/locate"
	"github.com/qiblatech/minaret/internal/settings"
)

// GET /api/location/name
// Cosmetic lookup: failures come back as the placeholder label, never as an
// error status.
func (c *Controller) locationName(ctx *gin.Context) (any, *api.Error) {
	coord, source := locate.Resolve(queryCoordinate(ctx), settings.Defaults())
	if source == locate.SourceDefault {
		return packets.LocationNameResponse{Name: "Karachi (Default)"}, nil
	}

	name := c.geocoder.PlaceName(ctx.Request.Context(), coord)
	return packets.LocationNameResponse{Name: name}, nil
}

// POST /api/alarms/:client
// Arms jamat reminders for the given mosque according to the client's alarm
// preferences.
func (c *Controller) scheduleAlarms(ctx *gin.Context) (any, *api.Error) {
	var request packets.ScheduleAlarmsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	mosque, apiErr := c.findMosque(request.MosqueID)
	if apiErr != nil {
		return nil, apiErr
	}

	client := ctx.Param("client")
	prefs, err := c.prefs.Load(ctx.Request.Context(), client)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	c.alarms.ScheduleJamat(client, *mosque, prefs, c.loc)
	return packets.AlarmScheduleResponse{Scheduled: prefs.Alarms.Enabled, Mosque: mosque.Name}, nil
}

// DELETE /api/alarms/:client
func (c *Controller) cancelAlarms(ctx *gin.Context) (any, *api.Error) {
	c.alarms.CancelAll(ctx.Param("client"))
	return gin.H{"cancelled": true}, nil
}

package endpoints

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/alarm"
	"github.com/qiblatech/minaret/internal/db"
	"github.com/qiblatech/minaret/internal/directory"
	"github.com/qiblatech/minaret/internal/geocode"
	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/settings"
)

// Controller carries the collaborators of the public API.
type Controller struct {
	store    db.Store
	prefs    *settings.Service
	geocoder *geocode.Client
	alarms   *alarm.Scheduler
	loc      *time.Location
}

func NewController(store db.Store, prefs *settings.Service, geocoder *geocode.Client, alarms *alarm.Scheduler, loc *time.Location) *Controller {
	return &Controller{
		store:    store,
		prefs:    prefs,
		geocoder: geocoder,
		alarms:   alarms,
		loc:      loc,
	}
}

// RegisterRoutes mounts the public API.
func RegisterRoutes(r gin.IRoutes, c *Controller) {
	r.GET("/prayers", api.ResolveEndpoint(c.listPrayers))
	r.GET("/prayers/next", api.ResolveEndpoint(c.nextPrayer))
	r.GET("/prayers/methods", api.ResolveEndpoint(c.listMethods))

	r.GET("/mosques", api.ResolveEndpoint(c.listMosques))
	r.GET("/mosques/:id", api.ResolveEndpoint(c.getMosque))

	r.GET("/location/name", api.ResolveEndpoint(c.locationName))

	r.GET("/settings/:client", api.ResolveEndpoint(c.getSettings))
	r.PUT("/settings/:client", api.ResolveEndpoint(c.putSettings))
	r.PUT("/settings/:client/mosque", api.ResolveEndpoint(c.setMyMosque))
	r.DELETE("/settings/:client/mosque", api.ResolveEndpoint(c.clearMyMosque))

	r.POST("/alarms/:client", api.ResolveEndpoint(c.scheduleAlarms))
	r.DELETE("/alarms/:client", api.ResolveEndpoint(c.cancelAlarms))
}

// clientID identifies the calling device for preference lookups on routes
// without a :client segment.
func clientID(ctx *gin.Context) string {
	if id := ctx.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return "anonymous"
}

// queryCoordinate reads lat/lon query params. Missing or malformed values
// yield nil, which downstream resolution treats as position unavailable.
func queryCoordinate(ctx *gin.Context) *model.Coordinate {
	latStr, lonStr := ctx.Query("lat"), ctx.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &model.Coordinate{Latitude: lat, Longitude: lon}
}

// directoryMosques reads the stored directory, degrading to the bundled
// dataset when the store is empty or unreachable.
func (c *Controller) directoryMosques() []model.Mosque {
	mosques, err := c.store.ListMosques()
	if err != nil || len(mosques) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("mosque store unavailable, serving bundled dataset")
		}
		return directory.Bundled()
	}
	return mosques
}

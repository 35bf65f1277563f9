package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/db"
	"github.com/qiblatech/minaret/internal/directory"
	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/admin/packets"
	"github.com/qiblatech/minaret/internal/model"
)

type DirectoryController struct {
	store  db.Store
	loader *directory.Loader
}

func NewDirectoryController(store db.Store, loader *directory.Loader) *DirectoryController {
	return &DirectoryController{store: store, loader: loader}
}

// RegisterDirectoryRoutes mounts the JWT-protected admin routes.
func RegisterDirectoryRoutes(r gin.IRoutes, store db.Store, loader *directory.Loader) {
	ctl := NewDirectoryController(store, loader)
	r.PUT("/mosques/:id/jamat", api.ResolveEndpointWithAuth(ctl.updateJamat))
	r.POST("/directory/refresh", api.ResolveEndpointWithAuth(ctl.refreshDirectory))
}

// PUT /api/admin/mosques/:id/jamat
// The correction path behind the app's "report wrong times" flow.
func (d *DirectoryController) updateJamat(ctx *gin.Context, admin *model.Admin) (any, *api.Error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateJamatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	times := model.JamatTimes{
		Fajr:   request.Fajr,
		Dhuhr:  request.Dhuhr,
		Asr:    request.Asr,
		Sunset: request.Sunset,
		Isha:   request.Isha,
		Jumuah: request.Jumuah,
	}
	lastUpdated := request.LastUpdated
	if lastUpdated == "" {
		lastUpdated = time.Now().Format("2006-01-02")
	}

	if err := d.store.UpdateJamatTimes(id, times, lastUpdated); err != nil {
		return nil, &api.Error{Code: http.StatusNotFound, Message: "mosque not found"}
	}

	log.Info().Int("mosque", id).Str("admin", admin.Email).Msg("jamat times corrected")
	return gin.H{"updated": id}, nil
}

// POST /api/admin/directory/refresh
// Re-fetches the published sheet and upserts the result. A sheet failure is
// reported here (unlike the public path, which silently degrades).
func (d *DirectoryController) refreshDirectory(ctx *gin.Context, admin *model.Admin) (any, *api.Error) {
	mosques, err := d.loader.FetchRemote(ctx.Request.Context())
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadGateway, Message: err.Error()}
	}

	if err := d.store.UpsertMosques(mosques); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not store directory"}
	}

	log.Info().Int("count", len(mosques)).Str("admin", admin.Email).Msg("directory refreshed")
	return packets.RefreshResponse{Source: "sheet", Count: len(mosques)}, nil
}

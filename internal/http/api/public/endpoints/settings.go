package endpoints

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/public/packets"
)

// GET /api/settings/:client
func (c *Controller) getSettings(ctx *gin.Context) (any, *api.Error) {
	client := ctx.Param("client")

	prefs, err := c.prefs.Load(ctx.Request.Context(), client)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	out := packets.SettingsResponse{Settings: prefs}
	if id, ok, _ := c.prefs.MyMosque(ctx.Request.Context(), client); ok {
		out.MyMosque = &id
	}
	return out, nil
}

// PUT /api/settings/:client
// The body is a partial settings document; omitted keys are untouched.
func (c *Controller) putSettings(ctx *gin.Context) (any, *api.Error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "could not read body"}
	}

	saved, err := c.prefs.Save(ctx.Request.Context(), ctx.Param("client"), body)
	if err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return packets.SettingsResponse{Settings: saved}, nil
}

// PUT /api/settings/:client/mosque
func (c *Controller) setMyMosque(ctx *gin.Context) (any, *api.Error) {
	var request packets.SetMyMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, apiErr := c.findMosque(request.MosqueID); apiErr != nil {
		return nil, apiErr
	}
	if err := c.prefs.SetMyMosque(ctx.Request.Context(), ctx.Param("client"), request.MosqueID); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not save mosque"}
	}
	return gin.H{"myMosque": request.MosqueID}, nil
}

// DELETE /api/settings/:client/mosque
func (c *Controller) clearMyMosque(ctx *gin.Context) (any, *api.Error) {
	if err := c.prefs.ClearMyMosque(ctx.Request.Context(), ctx.Param("client")); err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not clear mosque"}
	}
	return gin.H{"myMosque": nil}, nil
}

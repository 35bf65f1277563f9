package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/qiblatech/minaret/internal/db"
	"github.com/qiblatech/minaret/internal/http/api"
	"github.com/qiblatech/minaret/internal/http/api/admin/packets"
	"github.com/qiblatech/minaret/internal/http/middleware"
)

type AuthController struct {
	store  db.Store
	secret string
}

func NewAuthController(store db.Store, secret string) *AuthController {
	return &AuthController{store: store, secret: secret}
}

// RegisterAuthRoutes mounts the public (unauthenticated) admin routes.
func RegisterAuthRoutes(r gin.IRoutes, store db.Store, secret string) {
	ctl := NewAuthController(store, secret)
	r.POST("/auth/register", api.ResolveEndpoint(ctl.register))
	r.POST("/auth/login", api.ResolveEndpoint(ctl.login))
}

// POST /api/admin/auth/register
func (a *AuthController) register(ctx *gin.Context) (any, *api.Error) {
	var request packets.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	id, err := a.store.CreateAdmin(request.Email, string(hashed), request.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to register admin")
		return nil, &api.Error{Code: http.StatusConflict, Message: "could not create account"}
	}

	token, err := middleware.GenerateJWT(id, a.secret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}
	return packets.TokenResponse{Token: token}, nil
}

// POST /api/admin/auth/login
func (a *AuthController) login(ctx *gin.Context) (any, *api.Error) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	}

	admin, err := a.store.GetAdminByEmail(request.Email)
	if err != nil {
		return nil, &api.Error{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(request.Password)) != nil {
		return nil, &api.Error{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateJWT(admin.ID, a.secret)
	if err != nil {
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}
	return packets.TokenResponse{Token: token}, nil
}

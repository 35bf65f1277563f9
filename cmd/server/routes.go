package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qiblatech/minaret/internal/alarm"
	"github.com/qiblatech/minaret/internal/db"
	"github.com/qiblatech/minaret/internal/directory"
	"github.com/qiblatech/minaret/internal/geocode"
	adminapi "github.com/qiblatech/minaret/internal/http/api/admin/endpoints"
	publicapi "github.com/qiblatech/minaret/internal/http/api/public/endpoints"
	"github.com/qiblatech/minaret/internal/http/middleware"
	"github.com/qiblatech/minaret/internal/settings"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, loader *directory.Loader, alarms *alarm.Scheduler, loc *time.Location) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"X-Client-ID",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	public := r.Group("/api")
	controller := publicapi.NewController(store, settings.NewRedisService(), geocode.NewClient(), alarms, loc)
	publicapi.RegisterRoutes(public, controller)

	// register auth (public) routes first:
	admin := r.Group("/api/admin")
	adminapi.RegisterAuthRoutes(admin, store, env.SecretKey)

	// apply JWTMiddleware for all the admin routes that follow
	admin.Use(middleware.JWTMiddleware(env.SecretKey, store))
	adminapi.RegisterDirectoryRoutes(admin, store, loader)
}

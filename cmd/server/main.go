package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/alarm"
	"github.com/qiblatech/minaret/internal/db"
	"github.com/qiblatech/minaret/internal/directory"
	"github.com/qiblatech/minaret/internal/redis"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env := LoadEnvironment()

	loc, err := time.LoadLocation(env.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", env.Timezone).Msg("invalid timezone")
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore(nil)

	// Redis backs per-client settings and the saved-mosque pointer.
	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	// Reminders go out over MQTT; without a broker they land in the log.
	var publisher alarm.Publisher = alarm.LogPublisher{}
	if env.MQTTBrokerURL != "" {
		mqttPub, err := alarm.NewMQTTPublisher(env.MQTTBrokerURL, "minaret-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect failed")
		}
		publisher = mqttPub
	}

	// Seed the mosque directory so the first request never waits on the
	// sheet. Failures degrade to whatever the store already holds.
	loader := directory.NewLoader(env.SheetURL)
	seedDirectory(store, loader)

	r := gin.Default()
	RegisterRoutes(r, env, store, loader, alarm.NewScheduler(publisher), loc)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// seedDirectory loads the directory once at startup and upserts it. The
// bundled dataset is used when the sheet is unreachable, so a fresh database
// always has mosques to serve.
func seedDirectory(store db.Store, loader *directory.Loader) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mosques := loader.Load(ctx)
	if err := store.UpsertMosques(mosques); err != nil {
		log.Error().Err(err).Msg("failed to seed mosque directory")
		return
	}
	log.Info().Int("count", len(mosques)).Msg("mosque directory seeded")
}

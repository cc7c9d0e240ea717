package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/internal/goalsync"
	"github.com/finwell/team-finance-app/internal/logger"
	"github.com/finwell/team-finance-app/internal/routes"
)

// ScheduleGoalResync re-runs the full goal recompute for every organization
// once an hour, so goal amounts self-heal even if an asset write slipped
// past the event path.
func ScheduleGoalResync(pool *pgxpool.Pool, sync *goalsync.Manager, log zerolog.Logger) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		ctx := context.Background()
		ids, err := database.ListOrganizationIDs(ctx, pool)
		if err != nil {
			log.Error().Err(err).Msg("scheduled resync: listing organizations failed")
			return
		}
		for _, id := range ids {
			if err := sync.SyncAllGoals(ctx, id); err != nil {
				log.Error().Err(err).Str("organization_id", id.String()).Msg("scheduled resync failed")
			}
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("registering goal resync schedule")
	}
	c.Start()
	return c
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	}
}

func main() {
	log := logger.New()

	// .env is optional outside local development
	_ = godotenv.Load()

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	pool, err := database.Connect(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	sync := goalsync.NewManager(pool, log)

	resync := ScheduleGoalResync(pool, sync, log)
	defer resync.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), CORSMiddleware())
	routes.Register(r, pool, sync, []byte(secret), log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

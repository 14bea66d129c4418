package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/TrainFitServices/training-scheduler/internal/cache"
	"github.com/TrainFitServices/training-scheduler/internal/config"
	dbpkg "github.com/TrainFitServices/training-scheduler/internal/db"
	infraRepo "github.com/TrainFitServices/training-scheduler/internal/infra/repository"
	"github.com/TrainFitServices/training-scheduler/internal/middleware"
	"github.com/TrainFitServices/training-scheduler/internal/notify"
	"github.com/TrainFitServices/training-scheduler/internal/reminder"
	"github.com/TrainFitServices/training-scheduler/internal/routes"
	"github.com/TrainFitServices/training-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	availability := cache.NewAvailabilityCache(rdb)

	mailer := notify.NewSMTPMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.SMTPFrom,
	)
	retrier := notify.NewRetrier(mailer)
	notifier := notify.NewDispatcher(retrier)

	scheduler := reminder.NewScheduler(
		infraRepo.NewReminderGormRepository(db),
		retrier,
		timezone.Location(cfg.Timezone),
	)
	go scheduler.Run(context.Background(), cfg.ReminderInterval)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier, scheduler, availability)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

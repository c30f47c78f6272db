package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/kings-labs/elp-api/api/swagger"
	"github.com/kings-labs/elp-api/internal/handler"
	"github.com/kings-labs/elp-api/internal/repository"
	"github.com/kings-labs/elp-api/internal/service"
	"github.com/kings-labs/elp-api/pkg/cache"
	"github.com/kings-labs/elp-api/pkg/config"
	"github.com/kings-labs/elp-api/pkg/database"
	"github.com/kings-labs/elp-api/pkg/jobs"
	"github.com/kings-labs/elp-api/pkg/logger"
)

// @title ELP Tutoring API
// @version 1.0.0
// @description Coordination backend for the ELP tutoring Discord bot
// @BasePath /
// @schemes http

const migrationsDir = "db/migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db, migrationsDir); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, count cache disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	weekRefs := repository.NewWeekReferenceRepository(db)
	courses := repository.NewCourseRepository(db)
	classes := repository.NewClassRepository(db)
	cancellations := repository.NewCancellationRepository(db)
	reschedulings := repository.NewReschedulingRepository(db)
	feedbacks := repository.NewFeedbackRepository(db)
	courseRequests := repository.NewCourseRequestRepository(db)
	tutors := repository.NewTutorRepository(db)
	tutorDemands := repository.NewTutorDemandRepository(db)
	users := repository.NewUserRepository(db)

	metrics := service.NewMetricsService()
	authService := service.NewAuthService(users, cfg.JWT.Secret, cfg.JWT.Expiration, logr)
	generation := service.NewClassGenerationService(weekRefs, courses, classes, metrics, logr)
	requests := service.NewRequestService(classes, cancellations, reschedulings, feedbacks, weekRefs, logr)
	demands := service.NewTutorDemandService(courseRequests, tutors, tutorDemands, logr)
	notifications := service.NewNotificationService(tutorDemands, cancellations, reschedulings, feedbacks, metrics, logr)
	courseRequestService := service.NewCourseRequestService(courseRequests, redisClient, cfg.Cache.CountTTL, logr)
	classService := service.NewClassService(classes, weekRefs, logr)

	router := handler.NewRouter(cfg, logr, authService, metrics, handler.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Requests:       handler.NewRequestHandler(requests),
		CourseRequests: handler.NewCourseRequestHandler(courseRequestService),
		TutorDemands:   handler.NewTutorDemandHandler(demands),
		Classes:        handler.NewClassHandler(classService),
		Messages:       handler.NewMessageHandler(notifications),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Scheduler.Enabled {
		scheduler := jobs.NewScheduler("class_generation", cfg.Scheduler.Interval, func(ctx context.Context) error {
			_, err := generation.Run(ctx)
			return err
		}, logr)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/fitness-tracker/internal/api"
	"fittrack/fitness-tracker/internal/config"
	"fittrack/fitness-tracker/internal/logging"
	"fittrack/fitness-tracker/internal/repository"
	"fittrack/fitness-tracker/internal/repository/memory"
	"fittrack/fitness-tracker/internal/repository/mongo"
	"fittrack/fitness-tracker/internal/service"
	"fittrack/fitness-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// repositories groups the persistence backends chosen by database.driver.
type repositories struct {
	users          repository.UserRepository
	verifications  repository.EmailVerificationRepository
	exercises      repository.ExerciseRepository
	workouts       repository.WorkoutRepository
	foodItems      repository.FoodItemRepository
	nutritionPlans repository.NutritionPlanRepository
	uploads        repository.UploadRepository
	close          func()
}

func openRepositories(cfg config.DatabaseConfig, log logrus.FieldLogger) (*repositories, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on restart")
		store := memory.New()
		return &repositories{
			users:          store.Users(),
			verifications:  store.EmailVerifications(),
			exercises:      store.Exercises(),
			workouts:       store.Workouts(),
			foodItems:      store.FoodItems(),
			nutritionPlans: store.NutritionPlans(),
			uploads:        store.Uploads(),
			close:          func() {},
		}, nil
	}

	client, err := mongo.ConnectDB(cfg.URI)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Name)
	log.WithField("database", cfg.Name).Info("database connection established")

	// Unique indexes enforce title and email uniqueness, so startup waits for them.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = mongo.DisconnectDB(client)
		return nil, err
	}

	return &repositories{
		users:          mongo.NewMongoUserRepository(db),
		verifications:  mongo.NewMongoEmailVerificationRepository(db),
		exercises:      mongo.NewMongoExerciseRepository(db),
		workouts:       mongo.NewMongoWorkoutRepository(db),
		foodItems:      mongo.NewMongoFoodItemRepository(db),
		nutritionPlans: mongo.NewMongoNutritionPlanRepository(db),
		uploads:        mongo.NewMongoUploadRepository(db),
		close: func() {
			log.Info("disconnecting MongoDB")
			if err := mongo.DisconnectDB(client); err != nil {
				log.WithError(err).Error("failed to disconnect MongoDB")
			}
		},
	}, nil
}

// @title Fitness Tracker API
// @version 1.0
// @description API for tracking exercises, workouts, food items and nutrition plans.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	log := logging.New(cfg.Log)
	log.WithFields(logrus.Fields{
		"address": cfg.Server.Address,
		"driver":  cfg.Database.Driver,
		"uploads": cfg.S3.Enabled(),
	}).Info("configuration loaded")

	// --- Repositories ---
	repos, err := openRepositories(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("could not open database")
	}
	defer repos.close()

	// --- Services ---
	services := api.Services{
		Auth: service.NewAuthService(repos.users, repos.verifications, service.LogMailer{Log: log}, service.AuthConfig{
			JWTSecret:           cfg.JWT.Secret,
			JWTExpiration:       cfg.JWT.Expiration,
			VerificationBaseURL: cfg.Email.VerificationBaseURL,
		}, log),
		Exercises:      service.NewExerciseService(repos.exercises),
		Workouts:       service.NewWorkoutService(repos.workouts, repos.exercises),
		FoodItems:      service.NewFoodItemService(repos.foodItems),
		NutritionPlans: service.NewNutritionPlanService(repos.nutritionPlans, repos.foodItems),
	}

	if cfg.S3.Enabled() {
		fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3, log)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize S3 storage")
		}
		services.Images = service.NewImageService(repos.uploads, fileStorage)
	} else {
		log.Info("s3.bucket_name not set; image upload routes disabled")
	}

	// --- Router ---
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	limiter := api.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
	router := api.NewRouter(log)
	if err := api.SetupRoutes(router, services, limiter, log); err != nil {
		log.WithError(err).Fatal("failed to set up routes")
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := limiter.Cleanup(10 * time.Minute); n > 0 {
					log.WithField("removed", n).Debug("rate limiter cleanup")
				}
			}
		}
	}()

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exiting")
}

package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Services bundles what the router needs. Images may be nil, in which case
// the upload routes are not mounted.
type Services struct {
	Auth           service.AuthService
	Exercises      service.ExerciseService
	Workouts       service.WorkoutService
	FoodItems      service.FoodItemService
	NutritionPlans service.NutritionPlanService
	Images         service.ImageService
}

// NewRouter builds a gin engine with recovery, metrics and request logging.
func NewRouter(log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware(), RequestLogger(log))
	return router
}

func SetupRoutes(router *gin.Engine, svc Services, limiter *RateLimiter, log logrus.FieldLogger) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	authHandler := NewAuthHandler(svc.Auth, log)
	exerciseHandler := NewExerciseHandler(svc.Exercises, log)
	workoutHandler := NewWorkoutHandler(svc.Workouts, log)
	foodItemHandler := NewFoodItemHandler(svc.FoodItems, log)
	planHandler := NewNutritionPlanHandler(svc.NutritionPlans, log)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	authGroup.Use(limiter.Middleware()) // keyed by client IP
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/verify-email/:token", authHandler.VerifyEmail)
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(svc.Auth, log), limiter.Middleware()) // keyed by user
	{
		protected.GET("/me", authHandler.Me)

		exercises := protected.Group("/exercises")
		{
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.GET("/:id", exerciseHandler.GetExercise)
			exercises.PUT("/:id", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.PUT("/:id", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		foodItems := protected.Group("/food-items")
		{
			foodItems.POST("", foodItemHandler.CreateFoodItem)
			foodItems.GET("", foodItemHandler.ListFoodItems)
			foodItems.GET("/:id", foodItemHandler.GetFoodItem)
			foodItems.PUT("/:id", foodItemHandler.UpdateFoodItem)
			foodItems.DELETE("/:id", foodItemHandler.DeleteFoodItem)
		}

		plans := protected.Group("/nutrition-plans")
		{
			plans.POST("", planHandler.CreateNutritionPlan)
			plans.GET("", planHandler.ListNutritionPlans)
			plans.GET("/:id", planHandler.GetNutritionPlan)
			plans.PUT("/:id", planHandler.UpdateNutritionPlan)
			plans.DELETE("/:id", planHandler.DeleteNutritionPlan)
		}

		if svc.Images != nil {
			uploadHandler := NewUploadHandler(svc.Images, log)
			uploads := protected.Group("/uploads")
			{
				uploads.POST("/images", uploadHandler.RequestImageUploadURL)
				uploads.POST("/images/confirm", uploadHandler.ConfirmImageUpload)
				uploads.GET("/:id/url", uploadHandler.GetDownloadURL)
				uploads.DELETE("/:id", uploadHandler.DeleteUpload)
			}
		}
	}
	return nil
}

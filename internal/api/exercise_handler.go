package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log logrus.FieldLogger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// --- Request Structs ---

type ExerciseRequest struct {
	Title           string                   `json:"title" binding:"required"`
	Description     string                   `json:"description"`
	Category        domain.Category          `json:"category" binding:"required,enum"`
	Duration        float64                  `json:"duration" binding:"gte=0"`
	Intensity       domain.ExerciseIntensity `json:"intensity" binding:"required,enum"`
	Sets            int                      `json:"sets" binding:"gte=0"`
	Reps            int                      `json:"reps" binding:"gte=0"`
	Rest            float64                  `json:"rest" binding:"gte=0"`
	Image           string                   `json:"image"`
	YoutubeVideo    string                   `json:"youtubeVideo" binding:"omitempty,url"`
	TargetedMuscles []string                 `json:"targetedMuscles"`
}

func (r ExerciseRequest) input() service.ExerciseInput {
	return service.ExerciseInput{
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Duration:        r.Duration,
		Intensity:       r.Intensity,
		Sets:            r.Sets,
		Reps:            r.Reps,
		Rest:            r.Rest,
		Image:           r.Image,
		YoutubeVideo:    r.YoutubeVideo,
		TargetedMuscles: r.TargetedMuscles,
	}
}

type ExerciseListQuery struct {
	Category  string `form:"category"`
	Intensity string `form:"intensity"`
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 201 {object} Envelope "Exercise created successfully"
// @Failure 400 {object} Envelope "Invalid input"
// @Failure 409 {object} Envelope "Title already used by this user"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), userID, req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	metrics.RecordCreated("exercise")
	respond(c, http.StatusCreated, "Exercise created successfully", exercise)
}

// ListExercises godoc
// @Summary List the caller's exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param category query string false "Cardio, Strength or Flexibility"
// @Param intensity query string false "Low, Moderate or High"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope "Unknown filter value"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q ExerciseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	exercises, err := h.exerciseService.List(c.Request.Context(), userID, q.Category, q.Intensity)
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Exercises fetched successfully", exercises)
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	exercise, err := h.exerciseService.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Exercise fetched successfully", exercise)
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Exercise updated successfully", exercise)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if err := h.exerciseService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Exercise deleted successfully", nil)
}

package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	log            logrus.FieldLogger
}

func NewWorkoutHandler(workoutService service.WorkoutService, log logrus.FieldLogger) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, log: log}
}

// WorkoutRequest has no intensity field: it is computed from the exercises.
type WorkoutRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Exercises   []string `json:"exercises" binding:"required,min=1"`
	Image       string   `json:"image"`
	Duration    float64  `json:"duration" binding:"gte=0"`
}

func (r WorkoutRequest) input() service.WorkoutInput {
	return service.WorkoutInput{
		Title:       r.Title,
		Description: r.Description,
		Exercises:   r.Exercises,
		Image:       r.Image,
		Duration:    r.Duration,
	}
}

// CreateWorkout godoc
// @Summary Create a workout from the caller's exercises
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body WorkoutRequest true "Workout details"
// @Success 201 {object} Envelope "Workout created successfully"
// @Failure 400 {object} Envelope "Invalid input or unknown exercise ids"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	metrics.RecordCreated("workout")
	respond(c, http.StatusCreated, "Workout created successfully", workout)
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.List(c.Request.Context(), userID, c.Query("intensity"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Workouts fetched successfully", workouts)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Workout fetched successfully", workout)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Workout updated successfully", workout)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if err := h.workoutService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Workout deleted successfully", nil)
}

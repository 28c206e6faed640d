package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type NutritionPlanHandler struct {
	planService service.NutritionPlanService
	log         logrus.FieldLogger
}

func NewNutritionPlanHandler(planService service.NutritionPlanService, log logrus.FieldLogger) *NutritionPlanHandler {
	return &NutritionPlanHandler{planService: planService, log: log}
}

// NutritionPlanRequest carries no totals; they are summed from FoodItems.
type NutritionPlanRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	FoodItems       []string `json:"foodItems"`
	MaximumCalories *float64 `json:"maximumCalories" binding:"omitempty,gte=0"`
}

func (r NutritionPlanRequest) input() service.NutritionPlanInput {
	return service.NutritionPlanInput{
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		FoodItems:       r.FoodItems,
		MaximumCalories: r.MaximumCalories,
	}
}

// CreateNutritionPlan godoc
// @Summary Create the caller's nutrition plan
// @Tags NutritionPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body NutritionPlanRequest true "Plan details"
// @Success 201 {object} Envelope "Nutrition plan created successfully"
// @Failure 400 {object} Envelope "Invalid input, unknown food items or calorie cap exceeded"
// @Failure 409 {object} Envelope "The caller already has a plan"
// @Router /nutrition-plans [post]
func (h *NutritionPlanHandler) CreateNutritionPlan(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req NutritionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), userID, req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	metrics.RecordCreated("nutrition_plan")
	respond(c, http.StatusCreated, "Nutrition plan created successfully", plan)
}

func (h *NutritionPlanHandler) ListNutritionPlans(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	plans, err := h.planService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Nutrition plans fetched successfully", plans)
}

func (h *NutritionPlanHandler) GetNutritionPlan(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	plan, err := h.planService.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Nutrition plan fetched successfully", plan)
}

func (h *NutritionPlanHandler) UpdateNutritionPlan(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req NutritionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Nutrition plan updated successfully", plan)
}

func (h *NutritionPlanHandler) DeleteNutritionPlan(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if err := h.planService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Nutrition plan deleted successfully", nil)
}

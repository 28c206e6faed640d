package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/metrics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FoodItemHandler struct {
	foodItemService service.FoodItemService
	log             logrus.FieldLogger
}

func NewFoodItemHandler(foodItemService service.FoodItemService, log logrus.FieldLogger) *FoodItemHandler {
	return &FoodItemHandler{foodItemService: foodItemService, log: log}
}

// FoodItemRequest takes grams of each macronutrient; calories are derived.
type FoodItemRequest struct {
	Name    string  `json:"name" binding:"required"`
	Protein float64 `json:"protein" binding:"gte=0"`
	Carbs   float64 `json:"carbs" binding:"gte=0"`
	Fats    float64 `json:"fats" binding:"gte=0"`
	Image   string  `json:"image"`
}

func (r FoodItemRequest) input() service.FoodItemInput {
	return service.FoodItemInput{
		Name:    r.Name,
		Protein: r.Protein,
		Carbs:   r.Carbs,
		Fats:    r.Fats,
		Image:   r.Image,
	}
}

func (h *FoodItemHandler) CreateFoodItem(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	item, err := h.foodItemService.Create(c.Request.Context(), userID, req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	metrics.RecordCreated("food_item")
	respond(c, http.StatusCreated, "Food item created successfully", item)
}

func (h *FoodItemHandler) ListFoodItems(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	items, err := h.foodItemService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Food items fetched successfully", items)
}

func (h *FoodItemHandler) GetFoodItem(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	item, err := h.foodItemService.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Food item fetched successfully", item)
}

func (h *FoodItemHandler) UpdateFoodItem(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	item, err := h.foodItemService.Update(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Food item updated successfully", item)
}

func (h *FoodItemHandler) DeleteFoodItem(c *gin.Context) {
	userID, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if err := h.foodItemService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortWithServiceError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "Food item deleted successfully", nil)
}

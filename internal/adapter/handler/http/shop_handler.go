package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopService ports.ShopService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type ShopRequest struct {
	Name              string  `json:"name" binding:"required" example:"Federal Café"`
	Address           string  `json:"address" binding:"required" example:"Plaza de las Comendadoras, 9"`
	StartLocation     string  `json:"start_location" binding:"required" example:"Malasaña - plaza corner"`
	IsCyclistFriendly *bool   `json:"is_cyclist_friendly" example:"true"`
	Notes             *string `json:"notes" example:"Big tables, bike racks outside."`
}

type UpdateShop struct {
	Name              *string `json:"name,omitempty" example:"Federal Café (Updated)"`
	Address           *string `json:"address,omitempty" example:"Plaza de las Comendadoras, 9"`
	StartLocation     *string `json:"start_location,omitempty" example:"Malasaña - plaza corner"`
	IsCyclistFriendly *bool   `json:"is_cyclist_friendly,omitempty" example:"false"`
	Notes             *string `json:"notes,omitempty" example:"Closed on Mondays."`
}

type ShopResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	StartLocation     string  `json:"start_location"`
	IsCyclistFriendly bool    `json:"is_cyclist_friendly"`
	Notes             *string `json:"notes"`
}

func NewShopHandler(
	shopService ports.ShopService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Create a coffee shop
// @Description Create a coffee shop and return the stored row including its generated id
// @Tags shops
// @Accept json
// @Produce json
// @Param request body ShopRequest true "Shop payload"
// @Success 201 {object} ShopResponse "Shop created"
// @Failure 422 {object} errorResponse "Validation error"
// @Router /shops [post]
func (h *ShopHandler) CreateShop(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create shop", map[string]interface{}{
			"error": err.Error(),
		})
		newValidationErrorResponse(c, err)
		return
	}

	shop := &domain.CoffeeShop{
		Name:              req.Name,
		Address:           req.Address,
		StartLocation:     req.StartLocation,
		IsCyclistFriendly: true,
		Notes:             req.Notes,
	}
	if req.IsCyclistFriendly != nil {
		shop.IsCyclistFriendly = *req.IsCyclistFriendly
	}

	createdShop, err := h.shopService.CreateShop(c.Request.Context(), shop)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toShopResponse(createdShop))
}

// @Summary List coffee shops
// @Description Return all shops in storage order, no filters or pagination
// @Tags shops
// @Produce json
// @Success 200 {array} ShopResponse "Shops"
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	shops, err := h.shopService.ListShops(c.Request.Context())
	if err != nil {
		respondShopError(c, err)
		return
	}

	responses := make([]ShopResponse, len(shops))
	for i, shop := range shops {
		responses[i] = toShopResponse(shop)
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get a coffee shop
// @Description Fetch one shop by id
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID" example(1)
// @Success 200 {object} ShopResponse "Shop found"
// @Failure 404 {object} errorResponse "Shop not found"
// @Router /shops/{id} [get]
func (h *ShopHandler) GetShop(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	shopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid shop ID format", map[string]interface{}{
			"shop_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid shop ID")
		return
	}

	shop, err := h.shopService.GetShopByID(c.Request.Context(), shopID)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, toShopResponse(shop))
}

// @Summary Update a coffee shop
// @Description Apply the supplied fields to a shop; fields absent from the payload keep their stored values
// @Tags shops
// @Accept json
// @Produce json
// @Param id path int true "Shop ID" example(1)
// @Param request body UpdateShop true "Fields to update"
// @Success 200 {object} ShopResponse "Shop updated"
// @Failure 404 {object} errorResponse "Shop not found"
// @Failure 422 {object} errorResponse "Validation error"
// @Router /shops/{id} [put]
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	shopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid shop ID format", map[string]interface{}{
			"shop_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid shop ID")
		return
	}

	existingShop, err := h.shopService.GetShopByID(c.Request.Context(), shopID)
	if err != nil {
		respondShopError(c, err)
		return
	}

	var req UpdateShop
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update shop", map[string]interface{}{
			"error": err.Error(),
		})
		newValidationErrorResponse(c, err)
		return
	}

	// only overwrite fields the caller actually supplied
	if req.Name != nil {
		existingShop.Name = *req.Name
	}
	if req.Address != nil {
		existingShop.Address = *req.Address
	}
	if req.StartLocation != nil {
		existingShop.StartLocation = *req.StartLocation
	}
	if req.IsCyclistFriendly != nil {
		existingShop.IsCyclistFriendly = *req.IsCyclistFriendly
	}
	if req.Notes != nil {
		existingShop.Notes = req.Notes
	}

	updatedShop, err := h.shopService.UpdateShop(c.Request.Context(), existingShop)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, toShopResponse(updatedShop))
}

// @Summary Delete a coffee shop
// @Description Delete a shop and return a confirmation. Rides referencing the shop keep their coffee_shop_id.
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID" example(1)
// @Success 200 {object} deleteResponse "Shop deleted"
// @Failure 404 {object} errorResponse "Shop not found"
// @Router /shops/{id} [delete]
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	shopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid shop ID format", map[string]interface{}{
			"shop_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid shop ID")
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), shopID); err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{
		Ok:      true,
		Message: "Shop deleted successfully.",
	})
}

func toShopResponse(shop *domain.CoffeeShop) ShopResponse {
	return ShopResponse{
		ID:                shop.ID,
		Name:              shop.Name,
		Address:           shop.Address,
		StartLocation:     shop.StartLocation,
		IsCyclistFriendly: shop.IsCyclistFriendly,
		Notes:             shop.Notes,
	}
}

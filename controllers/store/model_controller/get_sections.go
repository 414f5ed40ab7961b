package model_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/catalog"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// The three home-page carousels. Each derives its slice from the same
// catalog snapshot the grid uses.

// GetTrendingModels godoc
// @Summary Get trending models
// @Description Models carrying a trending score, highest first
// @Tags Storefront - Models
// @Produce json
// @Param limit query int false "Max models returned" default(6)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/models/trending [get]
func GetTrendingModels(c *gin.Context) {
	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	trending := catalog.Trending(records, parseSectionLimit(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending models fetched successfully", toCards(trending)))
}

// GetNewestModels godoc
// @Summary Get newest models
// @Description Most recently updated models across the whole catalog
// @Tags Storefront - Models
// @Produce json
// @Param limit query int false "Max models returned" default(6)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/models/newest [get]
func GetNewestModels(c *gin.Context) {
	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	newest := catalog.Newest(records, parseSectionLimit(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Newest models fetched successfully", toCards(newest)))
}

// GetFeaturedModels godoc
// @Summary Get featured models
// @Description Hand-picked featured models in catalog order
// @Tags Storefront - Models
// @Produce json
// @Param limit query int false "Max models returned" default(6)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/models/featured [get]
func GetFeaturedModels(c *gin.Context) {
	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	featured := catalog.Featured(records, parseSectionLimit(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured models fetched successfully", toCards(featured)))
}

package model_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontModelBySlug godoc
// @Summary Get single model details for storefront
// @Description Get full model information by slug
// @Tags Storefront - Models
// @Produce json
// @Param slug path string true "Model slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/models/{slug} [get]
func GetStorefrontModelBySlug(c *gin.Context) {
	slug := c.Param("slug")

	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch model"))
		return
	}

	for i := range records {
		if records[i].Slug == slug {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Model fetched successfully", records[i]))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Model not found"))
}

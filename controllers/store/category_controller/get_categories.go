package category_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/catalog"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description List all browse categories. Each model count is recomputed from the live catalog snapshot on every request, never read from a stored column.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := loadCategories(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	out := make([]models.CategoryWithCount, 0, len(categories))
	for i := range categories {
		count := catalog.CategoryModelCount(records, categories[i].Slug)
		out = append(out, categories[i].WithCount(count))
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", out))
}

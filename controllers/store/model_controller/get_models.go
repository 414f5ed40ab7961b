package model_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/catalog"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontModels godoc
// @Summary Get storefront models
// @Description Retrieve approved models with optional search text, chip, category, pricing, and capability filters plus sorting. Filtering runs in memory over the catalog snapshot.
// @Tags Storefront - Models
// @Produce json
// @Param q query string false "Search query (name, short description, or tags)"
// @Param chip query string false "Quick category chip (single-select)" default(All)
// @Param category query []string false "Category slugs (repeatable)"
// @Param pricing query []string false "Pricing tiers (repeatable)" Enums(free, freemium, paid)
// @Param capability query []string false "Capabilities (repeatable)" Enums(text, image, audio, video, code, agent)
// @Param sortBy query string false "Sort key" Enums(popular, newest, rating)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Models fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/models [get]
func GetStorefrontModels(c *gin.Context) {
	page, limit := parsePagination(c)

	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	filtered := catalog.Filter(records, parseFilterState(c))

	if key := models.SortKey(c.Query("sortBy")); key.IsValid() {
		filtered = catalog.Sort(filtered, key)
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	pageRecords := paginate(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Models fetched successfully",
		toCards(pageRecords),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}

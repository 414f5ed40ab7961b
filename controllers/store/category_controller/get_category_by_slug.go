package category_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/catalog"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryBySlug godoc
// @Summary Get category detail with its models
// @Description Returns a category plus its models sorted by the requested key (popular by default, matching the category page).
// @Tags Storefront - Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param sortBy query string false "Sort key" Enums(popular, newest, rating) default(popular)
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{slug} [get]
func GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")

	categories, err := loadCategories(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	var category *models.Category
	for i := range categories {
		if categories[i].Slug == slug {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	records, err := loadCatalog(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	inCategory := catalog.Filter(records, models.FilterState{SelectedCategories: []string{slug}})

	sortBy := models.SortKey(c.DefaultQuery("sortBy", string(models.SortPopular)))
	if !sortBy.IsValid() {
		sortBy = models.SortPopular
	}
	sorted := catalog.Sort(inCategory, sortBy)

	cards := make([]models.ModelCardResponse, 0, len(sorted))
	for i := range sorted {
		cards = append(cards, sorted[i].ToCard())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", gin.H{
		"category": category.WithCount(len(inCategory)),
		"models":   cards,
	}))
}

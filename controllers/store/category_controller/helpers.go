package category_controller

import (
	"github.com/sidduboy2025-hash/soch-ai-showcase/cache"
	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// loadCategories returns the category list, fetching on cache miss.
// Counts are never cached alongside; they come from the model snapshot.
func loadCategories(c *gin.Context) ([]models.Category, error) {
	if cached, ok := catalog_cache.GetCategories(); ok {
		return cached, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.CatalogGorm.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetCategories(categories)
	return categories, nil
}

// loadCatalog mirrors the model controller's snapshot loader; category pages
// need the model records to recompute per-category counts.
func loadCatalog(c *gin.Context) ([]models.AiModel, error) {
	if records, ok := catalog_cache.GetModels(); ok {
		return records, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	records := make([]models.AiModel, 0)
	if err := config.CatalogGorm.WithContext(ctx).
		Where("status = ?", models.StatusApproved).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetModels(records)
	return records, nil
}

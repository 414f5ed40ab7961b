package model_controller

import (
	"strconv"

	"github.com/sidduboy2025-hash/soch-ai-showcase/cache"
	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// loadCatalog returns the approved-catalog snapshot, fetching from the
// database on cache miss. Handlers treat the returned slice as immutable.
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

// parseFilterState builds the engine's filter state from query params.
// Unknown pricing/capability values are dropped, not rejected: a stale
// frontend must not break browsing.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.FilterState{
		SearchText:         c.Query("q"),
		SelectedChip:       c.DefaultQuery("chip", models.ChipAll),
		SelectedCategories: c.QueryArray("category"),
	}

	for _, raw := range c.QueryArray("pricing") {
		if p := models.Pricing(raw); p.IsValid() {
			state.SelectedPricing = append(state.SelectedPricing, p)
		}
	}
	for _, raw := range c.QueryArray("capability") {
		if capability := models.Capability(raw); capability.IsValid() {
			state.SelectedCapabilities = append(state.SelectedCapabilities, capability)
		}
	}

	return state
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices one page out of the filtered records.
func paginate(records []models.AiModel, page, limit int) []models.AiModel {
	start := (page - 1) * limit
	if start >= len(records) {
		return []models.AiModel{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// parseSectionLimit reads the carousel limit param, default 6 like the
// home page carousels.
func parseSectionLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 50 {
		limit = 6
	}
	return limit
}

func toCards(records []models.AiModel) []models.ModelCardResponse {
	cards := make([]models.ModelCardResponse, 0, len(records))
	for i := range records {
		cards = append(cards, records[i].ToCard())
	}
	return cards
}

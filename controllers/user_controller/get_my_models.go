package user_controller

import (
	"net/http"

	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/middleware"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetMyModels godoc
// @Summary List the caller's submitted models
// @Description Return every model the authenticated user has submitted, newest first, including pending and rejected ones.
// @Tags User - Models
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ModelSummaryResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/models [get]
func GetMyModels(c *gin.Context) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var records []models.AiModel
	if err := config.CatalogGorm.
		Where("submitted_by = ?", userID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch models"))
		return
	}

	summaries := make([]models.ModelSummaryResponse, 0, len(records))
	for i := range records {
		summaries = append(summaries, records[i].ToSummary())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Models fetched successfully", summaries))
}

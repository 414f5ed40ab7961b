package user_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/sidduboy2025-hash/soch-ai-showcase/cache"
	"github.com/sidduboy2025-hash/soch-ai-showcase/config"
	"github.com/sidduboy2025-hash/soch-ai-showcase/middleware"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/sidduboy2025-hash/soch-ai-showcase/services"
	"github.com/sidduboy2025-hash/soch-ai-showcase/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// submitGuardTTL is how long a duplicate submission of the same model name by
// the same user is rejected. Covers double-clicked submit buttons and retries.
const submitGuardTTL = 30 * time.Second

// UploadModel godoc
// @Summary Submit a new AI model
// @Description Submit a model listing for review. Accepts multipart form data with an optional icon and screenshot images. The listing enters the catalog with status "pending" and is not publicly visible until approved.
// @Tags User - Models
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Model name"
// @Param shortDescription formData string true "One-line description"
// @Param longDescription formData string false "Full description"
// @Param category formData string true "Category slug"
// @Param provider formData string true "Provider name"
// @Param pricing formData string true "Pricing tier (free, freemium, paid)"
// @Param externalUrl formData string true "Link to the model's site"
// @Param icon formData file false "Icon image"
// @Param screenshots formData file false "Screenshot images"
// @Success 201 {object} models.ApiResponse{data=models.ModelSummaryResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Duplicate submission"
// @Failure 500 {object} models.ApiResponse
// @Router /user/models [post]
func UploadModel(c *gin.Context) {
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

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.UploadModelRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Capabilities arrive as raw strings; reject anything outside the enum
	capabilities := make(models.CapabilityList, 0, len(req.Capabilities))
	for _, raw := range req.Capabilities {
		capability := models.Capability(raw)
		if !capability.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid capability: "+raw))
			return
		}
		capabilities = append(capabilities, capability)
	}

	// Category must exist
	var category models.Category
	if err := config.CatalogGorm.WithContext(ctx).
		Select("id, slug").
		First(&category, "slug = ?", req.Category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category"))
		} else {
			log.Printf("[ERROR] Database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	slug := utils.Slugify(req.Name)
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Model name must contain letters or digits"))
		return
	}

	// Double-submit guard: first SETNX wins, retries within the window get 409
	guardKey := fmt.Sprintf("upload_guard:%s:%s", userID, slug)
	acquired, err := config.RedisClient.SetNX(config.Ctx, guardKey, "1", submitGuardTTL).Result()
	if err != nil {
		log.Printf("⚠️ Redis unavailable, skipping double-submit guard: %v", err)
	} else if !acquired {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "This model was just submitted, please wait"))
		return
	}

	slug, err = uniqueSlug(ctx, slug)
	if err != nil {
		log.Printf("[ERROR] Slug lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Upload icon if provided
	var iconURL *string
	if iconFile, err := c.FormFile("icon"); err == nil {
		file, err := iconFile.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read icon file"))
			return
		}
		defer file.Close()

		url, err := cloudinaryService.UploadImage(ctx, file, iconFile.Filename, "soch-ai/models/"+slug)
		if err != nil {
			log.Printf("[ERROR] Icon upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload icon"))
			return
		}
		iconURL = &url
	}

	// Upload screenshots if provided
	var screenshots models.StringList
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["screenshots"]
		if len(files) > 0 {
			urls, err := cloudinaryService.UploadMultipleImages(ctx, files, "soch-ai/models/"+slug)
			if err != nil {
				log.Printf("[ERROR] Screenshot upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload screenshots"))
				return
			}
			screenshots = models.StringList(urls)
		}
	}

	model := models.AiModel{
		Slug:             slug,
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         category.Slug,
		Provider:         req.Provider,
		Pricing:          models.Pricing(req.Pricing),
		Capabilities:     capabilities,
		IsApiAvailable:   req.IsApiAvailable,
		IsOpenSource:     req.IsOpenSource,
		Tags:             models.TagsList(req.Tags),
		LastUpdated:      time.Now().UTC(),
		ModelType:        req.ModelType,
		ExternalURL:      req.ExternalURL,
		IconURL:          iconURL,
		Screenshots:      screenshots,
		BestFor:          models.StringList(req.BestFor),
		Features:         models.StringList(req.Features),
		ExamplePrompts:   models.StringList(req.ExamplePrompts),
		Status:           models.StatusPending,
		SubmittedBy:      &userID,
	}

	if err := config.CatalogGorm.WithContext(ctx).Create(&model).Error; err != nil {
		log.Printf("[ERROR] Failed to create model: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit model"))
		return
	}

	log.Printf("✅ Model submitted: %s (slug: %s, by: %s)", model.Name, model.Slug, userID)
	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Model submitted for review", model.ToSummary()))
}

// uniqueSlug appends a numeric suffix until the slug is free.
func uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := config.CatalogGorm.WithContext(ctx).
			Model(&models.AiModel{}).
			Where("slug = ?", slug).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

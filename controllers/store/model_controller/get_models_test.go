package model_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalog_cache "github.com/sidduboy2025-hash/soch-ai-showcase/cache"
	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/models", GetStorefrontModels)
	router.GET("/store/models/trending", GetTrendingModels)
	router.GET("/store/models/newest", GetNewestModels)
	router.GET("/store/models/featured", GetFeaturedModels)
	router.GET("/store/models/:slug", GetStorefrontModelBySlug)
	return router
}

// primeCatalog loads fixtures into the snapshot cache so handlers never
// touch the database.
func primeCatalog(t *testing.T) {
	t.Helper()

	installs := func(n int) *int { return &n }
	trending := func(f float64) *float64 { return &f }
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	catalog_cache.SetModels([]models.AiModel{
		{
			ID:               uuid.Must(uuid.NewV7()),
			Slug:             "nova-chat",
			Name:             "Nova Chat",
			ShortDescription: "Conversational assistant",
			Category:         "chatbots",
			Provider:         "Nova Labs",
			Pricing:          models.PricingFreemium,
			Rating:           4.7,
			InstallsCount:    installs(200),
			Capabilities:     models.CapabilityList{models.CapabilityText},
			Tags:             models.TagsList{"assistant"},
			LastUpdated:      base.AddDate(0, 0, 2),
			Featured:         true,
			TrendingScore:    trending(90),
			Status:           models.StatusApproved,
		},
		{
			ID:               uuid.Must(uuid.NewV7()),
			Slug:             "pixelforge",
			Name:             "PixelForge",
			ShortDescription: "Text-to-image generation",
			Category:         "image-generation",
			Provider:         "Forge AI",
			Pricing:          models.PricingPaid,
			Rating:           4.2,
			InstallsCount:    installs(500),
			Capabilities:     models.CapabilityList{models.CapabilityImage},
			Tags:             models.TagsList{"art", "diffusion"},
			LastUpdated:      base.AddDate(0, 0, 5),
			Status:           models.StatusApproved,
		},
		{
			ID:               uuid.Must(uuid.NewV7()),
			Slug:             "draftsmith",
			Name:             "DraftSmith",
			ShortDescription: "Writing assistant",
			Category:         "writing",
			Provider:         "Inkwell AI",
			Pricing:          models.PricingFree,
			Rating:           4.9,
			Capabilities:     models.CapabilityList{models.CapabilityText},
			Tags:             models.TagsList{"writing"},
			LastUpdated:      base,
			TrendingScore:    trending(70),
			Status:           models.StatusApproved,
		},
	})
	t.Cleanup(catalog_cache.Invalidate)
}

type listEnvelope struct {
	Message string                     `json:"message"`
	Data    []models.ModelCardResponse `json:"data"`
	Meta    *models.Pagination         `json:"meta"`
	Error   bool                       `json:"error"`
}

func doList(t *testing.T, router *gin.Engine, url string) (int, listEnvelope) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	var body listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func cardSlugs(cards []models.ModelCardResponse) []string {
	out := make([]string, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.Slug)
	}
	return out
}

func TestGetStorefrontModels_NoFilters(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	code, body := doList(t, router, "/store/models")

	assert.Equal(t, http.StatusOK, code)
	assert.False(t, body.Error)
	assert.Equal(t, []string{"nova-chat", "pixelforge", "draftsmith"}, cardSlugs(body.Data))
	require.NotNil(t, body.Meta)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 1, body.Meta.TotalPages)
}

func TestGetStorefrontModels_SearchAndCategory(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	code, body := doList(t, router, "/store/models?q=forge&category=image-generation")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"pixelforge"}, cardSlugs(body.Data))

	// Search hits tags too
	_, body = doList(t, router, "/store/models?q=diffusion")
	assert.Equal(t, []string{"pixelforge"}, cardSlugs(body.Data))
}

func TestGetStorefrontModels_InvalidEnumValuesDropped(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	// Bogus pricing and capability values must not filter anything out
	code, body := doList(t, router, "/store/models?pricing=enterprise&capability=telepathy")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Data, 3)
}

func TestGetStorefrontModels_SortByPopular(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	_, body := doList(t, router, "/store/models?sortBy=popular")
	assert.Equal(t, []string{"pixelforge", "nova-chat", "draftsmith"}, cardSlugs(body.Data))
}

func TestGetStorefrontModels_Pagination(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	_, body := doList(t, router, "/store/models?limit=2&page=2")
	assert.Equal(t, []string{"draftsmith"}, cardSlugs(body.Data))
	require.NotNil(t, body.Meta)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)

	// Past the last page comes back empty, not an error
	code, body := doList(t, router, "/store/models?limit=2&page=9")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Data)
}

func TestGetStorefrontModelBySlug(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/models/nova-chat", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.AiModel `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Nova Chat", body.Data.Name)
	assert.Equal(t, "chatbots", body.Data.Category)
}

func TestGetStorefrontModelBySlug_NotFound(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/models/no-such-model", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTrendingModels(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	code, body := doList(t, router, "/store/models/trending")
	assert.Equal(t, http.StatusOK, code)
	// Only scored models, highest first
	assert.Equal(t, []string{"nova-chat", "draftsmith"}, cardSlugs(body.Data))
}

func TestGetNewestModels_Limit(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	_, body := doList(t, router, "/store/models/newest?limit=1")
	assert.Equal(t, []string{"pixelforge"}, cardSlugs(body.Data))
}

func TestGetFeaturedModels(t *testing.T) {
	primeCatalog(t)
	router := newTestRouter()

	_, body := doList(t, router, "/store/models/featured")
	assert.Equal(t, []string{"nova-chat"}, cardSlugs(body.Data))
}

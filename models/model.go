package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Enumerations
// ═══════════════════════════════════════════════════════════

// Pricing is the closed pricing tier enum.
type Pricing string

const (
	PricingFree     Pricing = "free"
	PricingFreemium Pricing = "freemium"
	PricingPaid     Pricing = "paid"
)

// IsValid reports whether p is one of the known pricing tiers.
func (p Pricing) IsValid() bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid:
		return true
	}
	return false
}

// Capability is the closed model capability enum.
type Capability string

const (
	CapabilityText  Capability = "text"
	CapabilityImage Capability = "image"
	CapabilityAudio Capability = "audio"
	CapabilityVideo Capability = "video"
	CapabilityCode  Capability = "code"
	CapabilityAgent Capability = "agent"
)

// IsValid reports whether c is one of the known capabilities.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityText, CapabilityImage, CapabilityAudio, CapabilityVideo, CapabilityCode, CapabilityAgent:
		return true
	}
	return false
}

// ModelStatus tracks the review state of a user-submitted model.
type ModelStatus string

const (
	StatusPending  ModelStatus = "pending"
	StatusApproved ModelStatus = "approved"
	StatusRejected ModelStatus = "rejected"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Custom slice types so we can attach Scan/Value methods
type (
	TagsList       []string
	StringList     []string
	CapabilityList []Capability
)

// ═══════════════════════════════════════════════════════════
// Main AiModel Model (GORM)
// ═══════════════════════════════════════════════════════════

type AiModel struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name             string         `json:"name" gorm:"not null;index"`
	ShortDescription string         `json:"shortDescription" gorm:"not null"`
	LongDescription  string         `json:"longDescription" gorm:"type:text;not null"`
	Category         string         `json:"category" gorm:"not null;index"` // Category.Slug
	Provider         string         `json:"provider" gorm:"not null"`
	Pricing          Pricing        `json:"pricing" gorm:"type:varchar(20);not null;check:pricing IN ('free', 'freemium', 'paid');index"`
	Rating           float64        `json:"rating" gorm:"type:numeric(3,2);not null;default:0;check:rating >= 0 AND rating <= 5"`
	ReviewsCount     int            `json:"reviewsCount" gorm:"not null;default:0;check:reviews_count >= 0"`
	InstallsCount    *int           `json:"installsCount,omitempty" gorm:"check:installs_count >= 0"`
	Capabilities     CapabilityList `json:"capabilities" gorm:"type:jsonb;not null;default:'[]'"`
	IsApiAvailable   bool           `json:"isApiAvailable" gorm:"column:is_api_available;default:false"`
	IsOpenSource     bool           `json:"isOpenSource" gorm:"column:is_open_source;default:false"`
	Tags             TagsList       `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	LastUpdated      time.Time      `json:"lastUpdated" gorm:"not null;index:idx_ai_models_last_updated,sort:desc"`
	ModelType        string         `json:"modelType"`
	ExternalURL      string         `json:"externalUrl" gorm:"column:external_url;not null"`
	IconURL          *string        `json:"iconUrl,omitempty" gorm:"column:icon_url;type:text"`
	Screenshots      StringList     `json:"screenshots,omitempty" gorm:"type:jsonb;default:'[]'"`
	Featured         bool           `json:"featured,omitempty" gorm:"default:false;index"`
	TrendingScore    *float64       `json:"trendingScore,omitempty" gorm:"type:numeric(8,2)"`
	BestFor          StringList     `json:"bestFor,omitempty" gorm:"column:best_for;type:jsonb;default:'[]'"`
	Features         StringList     `json:"features,omitempty" gorm:"type:jsonb;default:'[]'"`
	ExamplePrompts   StringList     `json:"examplePrompts,omitempty" gorm:"column:example_prompts;type:jsonb;default:'[]'"`
	Status           ModelStatus    `json:"status" gorm:"type:varchar(20);not null;default:'approved';check:status IN ('pending', 'approved', 'rejected');index"`
	SubmittedBy      *uuid.UUID     `json:"submittedBy,omitempty" gorm:"column:submitted_by;type:uuid;index"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7 and deduplicate tags
func (m *AiModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	m.Tags = m.Tags.Dedupe()
	return nil
}

// TableName specifies the table name
func (AiModel) TableName() string {
	return "ai_models"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// UploadModelRequest is the multipart form submitted from the upload page.
// Icon and screenshots travel as file parts and are handled separately.
type UploadModelRequest struct {
	Name             string   `form:"name" binding:"required" example:"Nova Writer"`
	ShortDescription string   `form:"shortDescription" binding:"required" example:"AI writing assistant"`
	LongDescription  string   `form:"longDescription" example:"A long-form description..."`
	Category         string   `form:"category" binding:"required" example:"chatbots"`
	Provider         string   `form:"provider" binding:"required" example:"Nova Labs"`
	Pricing          string   `form:"pricing" binding:"required,oneof=free freemium paid" example:"freemium"`
	ModelType        string   `form:"modelType" example:"LLM"`
	ExternalURL      string   `form:"externalUrl" binding:"required,url" example:"https://nova.example.com"`
	IsApiAvailable   bool     `form:"isApiAvailable"`
	IsOpenSource     bool     `form:"isOpenSource"`
	Tags             []string `form:"tags"`
	Capabilities     []string `form:"capabilities"`
	BestFor          []string `form:"bestFor"`
	Features         []string `form:"features"`
	ExamplePrompts   []string `form:"examplePrompts"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ModelCardResponse is the thin shape rendered on catalog grids and carousels.
type ModelCardResponse struct {
	ID               uuid.UUID      `json:"id"`
	Slug             string         `json:"slug"`
	Name             string         `json:"name"`
	ShortDescription string         `json:"shortDescription"`
	Category         string         `json:"category"`
	Provider         string         `json:"provider"`
	Pricing          Pricing        `json:"pricing"`
	Rating           float64        `json:"rating"`
	ReviewsCount     int            `json:"reviewsCount"`
	InstallsCount    *int           `json:"installsCount,omitempty"`
	Capabilities     CapabilityList `json:"capabilities"`
	Tags             TagsList       `json:"tags"`
	IconURL          *string        `json:"iconUrl,omitempty"`
	Featured         bool           `json:"featured,omitempty"`
}

// ToCard converts a full AiModel to its grid card shape.
func (m *AiModel) ToCard() ModelCardResponse {
	return ModelCardResponse{
		ID:               m.ID,
		Slug:             m.Slug,
		Name:             m.Name,
		ShortDescription: m.ShortDescription,
		Category:         m.Category,
		Provider:         m.Provider,
		Pricing:          m.Pricing,
		Rating:           m.Rating,
		ReviewsCount:     m.ReviewsCount,
		InstallsCount:    m.InstallsCount,
		Capabilities:     m.Capabilities,
		Tags:             m.Tags,
		IconURL:          m.IconURL,
		Featured:         m.Featured,
	}
}

// ModelSummaryResponse is returned after a successful upload and on the
// profile "my models" list. Includes review status.
type ModelSummaryResponse struct {
	ID               uuid.UUID   `json:"id"`
	Slug             string      `json:"slug"`
	Name             string      `json:"name"`
	ShortDescription string      `json:"shortDescription"`
	Category         string      `json:"category"`
	Provider         string      `json:"provider"`
	Pricing          Pricing     `json:"pricing"`
	Status           ModelStatus `json:"status"`
	InstallsCount    *int        `json:"installsCount,omitempty"`
	IsApiAvailable   bool        `json:"isApiAvailable"`
	IsOpenSource     bool        `json:"isOpenSource"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// ToSummary converts a full AiModel to its submission summary shape.
func (m *AiModel) ToSummary() ModelSummaryResponse {
	return ModelSummaryResponse{
		ID:               m.ID,
		Slug:             m.Slug,
		Name:             m.Name,
		ShortDescription: m.ShortDescription,
		Category:         m.Category,
		Provider:         m.Provider,
		Pricing:          m.Pricing,
		Status:           m.Status,
		InstallsCount:    m.InstallsCount,
		IsApiAvailable:   m.IsApiAvailable,
		IsOpenSource:     m.IsOpenSource,
		CreatedAt:        m.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// TagsList methods
func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// Dedupe returns the tags with duplicates removed, first occurrence wins.
// Comparison is case-insensitive; the original casing is kept.
func (t TagsList) Dedupe() TagsList {
	seen := make(map[string]bool, len(t))
	out := make(TagsList, 0, len(t))
	for _, tag := range t {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}

// StringList methods
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// CapabilityList methods
func (c *CapabilityList) Scan(value interface{}) error {
	if value == nil {
		*c = make(CapabilityList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CapabilityList")
	}
	return json.Unmarshal(bytes, c)
}

func (c CapabilityList) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]Capability{})
	}
	return json.Marshal(c)
}

// Contains reports whether the list holds the given capability.
func (c CapabilityList) Contains(want Capability) bool {
	for _, item := range c {
		if item == want {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a browse category on the storefront
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Icon        string    `json:"icon" gorm:"not null"` // icon reference rendered by the frontend
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name (optional, GORM auto-pluralizes)
func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount extends Category with the number of approved models in it.
// The count is always recomputed from the live catalog, never stored: a stale
// stored count drifts as soon as a submission is approved.
type CategoryWithCount struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ModelCount  int       `json:"modelCount"`
}

// WithCount pairs a category with a freshly computed model count.
func (c *Category) WithCount(count int) CategoryWithCount {
	return CategoryWithCount{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		ModelCount:  count,
	}
}

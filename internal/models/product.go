// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a product sold in the shop. Products own their size
// records and feedback-image associations; deleting a product removes both.
type Product struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"index" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// Price is stored in VND, no fractional unit.
	Price      int64    `gorm:"not null" json:"price"`
	Sold       int64    `json:"sold"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`
	BrandID    uint     `gorm:"not null;index" json:"brand_id"`
	Brand      Brand    `gorm:"foreignKey:BrandID" json:"brand"`

	Sizes          []ProductSize `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
	FeedbackImages []Image       `gorm:"many2many:product_feedback_images" json:"feedback_images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

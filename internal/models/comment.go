package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a user comment on either a post or a product.
// Exactly one of PostID and ProductID is set; the two creation paths are
// mutually exclusive and the service layer enforces it.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	PostID    *uint          `gorm:"index" json:"post_id,omitempty"`
	ProductID *string        `gorm:"size:36;index" json:"product_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

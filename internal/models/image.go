package models

import "time"

// Image is an uploaded image belonging to a user's image pool. Products
// reference images through the product_feedback_images join table; the
// association is owned by the product, the image row is not.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Link      string    `gorm:"not null" json:"link"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

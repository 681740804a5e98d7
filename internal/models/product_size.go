package models

import "time"

// SizesVN is the fixed set of Vietnamese shoe sizes the shop stocks.
var SizesVN = []int{35, 36, 37, 38, 39, 40, 41, 42}

// ValidSize reports whether size belongs to the stocked size set.
func ValidSize(size int) bool {
	for _, s := range SizesVN {
		if s == size {
			return true
		}
	}
	return false
}

// ProductSize is the stock count of one product at one standardized size.
// There is at most one record per (product, size) pair.
type ProductSize struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_product_size" json:"product_id"`
	Size      int       `gorm:"not null;uniqueIndex:idx_product_size" json:"size"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

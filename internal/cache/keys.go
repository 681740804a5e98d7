package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	productKeyPrefix = "product:%s"
	userKeyPrefix    = "user:%d"

	// BrandsKey and CategoriesKey cache the full reference lists; both are
	// read-mostly so a long TTL is fine.
	BrandsKey     = "brands:all"
	CategoriesKey = "categories:all"
)

const (
	ProductTTL = 10 * time.Minute
	UserTTL    = 5 * time.Minute
	CatalogTTL = 30 * time.Minute
)

func ProductKey(id string) string {
	return fmt.Sprintf(productKeyPrefix, id)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateProduct(ctx context.Context, id string) {
	Invalidate(ctx, ProductKey(id))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCatalog(ctx context.Context) {
	Invalidate(ctx, BrandsKey, CategoriesKey)
}

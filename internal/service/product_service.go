// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"

	"github.com/google/uuid"
)

// ProductPageSize is the fixed page size for admin product listings.
const ProductPageSize = 10

const maxProductNameLen = 200

// ProductService implements the product management workflow: filtered
// listing, creation, update, size-count upserts, feedback-image replacement
// and (bulk) deletion.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	imageRepo    repository.ImageRepository
}

// NewProductService creates a new ProductService.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	imageRepo repository.ImageRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		imageRepo:    imageRepo,
	}
}

// ListProductsInput holds the admin list filters. Empty fields impose no
// constraint; all supplied filters combine with AND.
type ListProductsInput struct {
	ID         string
	Name       string
	CategoryID uint
	BrandID    uint
	Page       int
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Items []*models.Product `json:"items"`
	models.PageMeta
}

// SaveProductInput carries the fields for product creation and update.
type SaveProductInput struct {
	Name        string
	Description string
	Price       int64
	CategoryID  uint
	BrandID     uint
	// ImageIDs, when non-nil, sets the feedback-image association set.
	ImageIDs []uint
}

// SizeCount is one (size, quantity) pair for the upsert operation.
type SizeCount struct {
	Size     int `json:"size"`
	Quantity int `json:"quantity"`
}

// UpsertSizeCountsInput targets one product with a set of size counts.
type UpsertSizeCountsInput struct {
	ProductID string
	Sizes     []SizeCount
}

// BulkDeleteFailure reports one id that could not be deleted.
type BulkDeleteFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkDeleteResult reports the outcome of a best-effort bulk delete.
type BulkDeleteResult struct {
	Deleted []string            `json:"deleted"`
	Failed  []BulkDeleteFailure `json:"failed"`
}

// AdminListProducts returns one page of products matching every supplied
// filter. Page numbers below 1 are clamped to 1.
func (s *ProductService) AdminListProducts(ctx context.Context, in ListProductsInput) (*ProductPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ProductPageSize

	filter := repository.ProductFilter{
		ID:         strings.TrimSpace(in.ID),
		Name:       strings.TrimSpace(in.Name),
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
	}

	items, total, err := s.productRepo.List(ctx, filter, ProductPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items:    items,
		PageMeta: models.NewPageMeta(page, ProductPageSize, total),
	}, nil
}

// GetProduct returns the product with its category, brand, sizes and
// feedback images.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListSizes returns the product's size records ordered by size.
func (s *ProductService) ListSizes(ctx context.Context, productID string) ([]models.ProductSize, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.productRepo.ListSizes(ctx, productID)
}

// CreateProduct validates the request, resolves category and brand, and
// persists the product with a generated id and slug.
func (s *ProductService) CreateProduct(ctx context.Context, in SaveProductInput) (*models.Product, error) {
	if fields := validateProductInput(in); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.brandRepo.GetByID(ctx, in.BrandID); err != nil {
		return nil, err
	}

	images, err := s.resolveImages(ctx, in.ImageIDs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Slug:           Slugify(in.Name),
		Description:    in.Description,
		Price:          in.Price,
		CategoryID:     in.CategoryID,
		BrandID:        in.BrandID,
		FeedbackImages: images,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// UpdateProduct applies the same validation as creation against an existing
// product. An unknown id yields a not-found error.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in SaveProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields := validateProductInput(in); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.brandRepo.GetByID(ctx, in.BrandID); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Slug = Slugify(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.BrandID = in.BrandID
	// Drop the preloaded associations so the row update carries the new
	// foreign keys; images are replaced explicitly below.
	product.Category = models.Category{}
	product.Brand = models.Brand{}
	product.Sizes = nil
	product.FeedbackImages = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if in.ImageIDs != nil {
		images, err := s.resolveImages(ctx, in.ImageIDs)
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.ReplaceFeedbackImages(ctx, id, images); err != nil {
			return nil, err
		}
	}

	return s.productRepo.GetByID(ctx, id)
}

// UpsertSizeCounts creates or overwrites each supplied (size, quantity)
// pair. Size records not named in the request are left untouched.
func (s *ProductService) UpsertSizeCounts(ctx context.Context, in UpsertSizeCountsInput) error {
	if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
		return err
	}

	var fields []models.FieldError
	for _, sc := range in.Sizes {
		if !models.ValidSize(sc.Size) {
			fields = append(fields, models.FieldError{Field: "size", Message: "size không hợp lệ"})
		}
		if sc.Quantity < 0 {
			fields = append(fields, models.FieldError{Field: "quantity", Message: "số lượng phải >= 0"})
		}
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}

	for _, sc := range in.Sizes {
		ps := &models.ProductSize{
			ProductID: in.ProductID,
			Size:      sc.Size,
			Quantity:  sc.Quantity,
		}
		if err := s.productRepo.UpsertSize(ctx, ps); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceFeedbackImages swaps the product's feedback-image set. Every
// referenced image must exist.
func (s *ProductService) ReplaceFeedbackImages(ctx context.Context, productID string, imageIDs []uint) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	images, err := s.resolveImages(ctx, imageIDs)
	if err != nil {
		return err
	}
	return s.productRepo.ReplaceFeedbackImages(ctx, productID, images)
}

// DeleteProduct removes the product and cascades to its size and
// feedback-image records. An unknown id yields a not-found error;
// persistence failures surface as internal errors.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return models.NewInternalError("", err)
	}
	return nil
}

// BulkDeleteProducts deletes each id best-effort: an id that fails is
// reported and does not stop the others.
func (s *ProductService) BulkDeleteProducts(ctx context.Context, ids []string) (*BulkDeleteResult, error) {
	if len(ids) == 0 {
		return nil, models.NewValidationError("danh sách id trống")
	}

	result := &BulkDeleteResult{}
	for _, id := range ids {
		if err := s.DeleteProduct(ctx, id); err != nil {
			result.Failed = append(result.Failed, BulkDeleteFailure{ID: id, Reason: err.Error()})
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}
	return result, nil
}

func (s *ProductService) resolveImages(ctx context.Context, ids []uint) ([]models.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	images, err := s.imageRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(images) != len(uniqueUints(ids)) {
		return nil, models.NewNotFoundError("Image", ids)
	}
	return images, nil
}

func validateProductInput(in SaveProductInput) []models.FieldError {
	var fields []models.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, models.FieldError{Field: "name", Message: "tên sản phẩm là bắt buộc"})
	} else if len(in.Name) > maxProductNameLen {
		fields = append(fields, models.FieldError{Field: "name", Message: "tên sản phẩm quá dài"})
	}
	if in.Price <= 0 {
		fields = append(fields, models.FieldError{Field: "price", Message: "giá phải lớn hơn 0"})
	}
	if in.CategoryID == 0 {
		fields = append(fields, models.FieldError{Field: "category_id", Message: "danh mục là bắt buộc"})
	}
	if in.BrandID == 0 {
		fields = append(fields, models.FieldError{Field: "brand_id", Message: "nhãn hiệu là bắt buộc"})
	}
	return fields
}

// Slugify builds a URL-safe slug from a product name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func uniqueUints(in []uint) []uint {
	seen := make(map[uint]struct{}, len(in))
	out := in[:0:0]
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

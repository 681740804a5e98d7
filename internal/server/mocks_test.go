package server

import (
	"context"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var products []*models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]*models.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) UpsertSize(ctx context.Context, size *models.ProductSize) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockProductRepository) ListSizes(ctx context.Context, productID string) ([]models.ProductSize, error) {
	args := m.Called(ctx, productID)
	var sizes []models.ProductSize
	if args.Get(0) != nil {
		sizes = args.Get(0).([]models.ProductSize)
	}
	return sizes, args.Error(1)
}

func (m *MockProductRepository) ReplaceFeedbackImages(ctx context.Context, productID string, images []models.Image) error {
	args := m.Called(ctx, productID, images)
	return args.Error(0)
}

// MockCategoryRepository is a testify mock for repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	var categories []models.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]models.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// MockBrandRepository is a testify mock for repository.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) List(ctx context.Context) ([]models.Brand, error) {
	args := m.Called(ctx)
	var brands []models.Brand
	if args.Get(0) != nil {
		brands = args.Get(0).([]models.Brand)
	}
	return brands, args.Error(1)
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

// MockImageRepository is a testify mock for repository.ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) ListByUser(ctx context.Context, userID uint) ([]models.Image, error) {
	args := m.Called(ctx, userID)
	var images []models.Image
	if args.Get(0) != nil {
		images = args.Get(0).([]models.Image)
	}
	return images, args.Error(1)
}

func (m *MockImageRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Image, error) {
	args := m.Called(ctx, ids)
	var images []models.Image
	if args.Get(0) != nil {
		images = args.Get(0).([]models.Image)
	}
	return images, args.Error(1)
}

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetWithPassword(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

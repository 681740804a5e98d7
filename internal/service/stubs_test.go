package service

import (
	"context"
	"errors"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"

	"github.com/stretchr/testify/require"
)

// productRepoStub is a stub for repository.ProductRepository.
type productRepoStub struct {
	createFn                func(context.Context, *models.Product) error
	getByIDFn               func(context.Context, string) (*models.Product, error)
	listFn                  func(context.Context, repository.ProductFilter, int, int) ([]*models.Product, int64, error)
	updateFn                func(context.Context, *models.Product) error
	deleteFn                func(context.Context, string) error
	upsertSizeFn            func(context.Context, *models.ProductSize) error
	listSizesFn             func(context.Context, string) ([]models.ProductSize, error)
	replaceFeedbackImagesFn func(context.Context, string, []models.Image) error
}

func (s *productRepoStub) Create(ctx context.Context, p *models.Product) error {
	return s.createFn(ctx, p)
}
func (s *productRepoStub) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.getByIDFn(ctx, id)
}
func (s *productRepoStub) List(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	return s.listFn(ctx, f, limit, offset)
}
func (s *productRepoStub) Update(ctx context.Context, p *models.Product) error {
	return s.updateFn(ctx, p)
}
func (s *productRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *productRepoStub) UpsertSize(ctx context.Context, ps *models.ProductSize) error {
	return s.upsertSizeFn(ctx, ps)
}
func (s *productRepoStub) ListSizes(ctx context.Context, productID string) ([]models.ProductSize, error) {
	return s.listSizesFn(ctx, productID)
}
func (s *productRepoStub) ReplaceFeedbackImages(ctx context.Context, productID string, images []models.Image) error {
	return s.replaceFeedbackImagesFn(ctx, productID, images)
}

func noopProductRepo() *productRepoStub {
	return &productRepoStub{
		createFn: func(_ context.Context, _ *models.Product) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Product, error) {
			return &models.Product{ID: id}, nil
		},
		listFn: func(_ context.Context, _ repository.ProductFilter, _, _ int) ([]*models.Product, int64, error) {
			return nil, 0, nil
		},
		updateFn:     func(_ context.Context, _ *models.Product) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		upsertSizeFn: func(_ context.Context, _ *models.ProductSize) error { return nil },
		listSizesFn: func(_ context.Context, _ string) ([]models.ProductSize, error) {
			return nil, nil
		},
		replaceFeedbackImagesFn: func(_ context.Context, _ string, _ []models.Image) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByPostFn    func(context.Context, uint) ([]*models.Comment, error)
	listByProductFn func(context.Context, string) ([]*models.Comment, error)
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListByProduct(ctx context.Context, productID string) ([]*models.Comment, error) {
	return s.listByProductFn(ctx, productID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listByProductFn: func(_ context.Context, _ string) ([]*models.Comment, error) {
			return nil, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Post, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getWithPasswordFn func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	updatePasswordFn  func(context.Context, uint, string) error
	deleteFn          func(context.Context, uint) error
	listFn            func(context.Context, repository.UserFilter, int, int) ([]models.User, int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetWithPassword(ctx context.Context, id uint) (*models.User, error) {
	return s.getWithPasswordFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error {
	return s.updateFn(ctx, u)
}
func (s *userRepoStub) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return s.updatePasswordFn(ctx, id, hash)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, f repository.UserFilter, limit, offset int) ([]models.User, int64, error) {
	return s.listFn(ctx, f, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getWithPasswordFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", email)
		},
		createFn:         func(_ context.Context, _ *models.User) error { return nil },
		updateFn:         func(_ context.Context, _ *models.User) error { return nil },
		updatePasswordFn: func(_ context.Context, _ uint, _ string) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		listFn: func(_ context.Context, _ repository.UserFilter, _, _ int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

// brandRepoStub is a stub for repository.BrandRepository.
type brandRepoStub struct {
	listFn    func(context.Context) ([]models.Brand, error)
	getByIDFn func(context.Context, uint) (*models.Brand, error)
}

func (s *brandRepoStub) List(ctx context.Context) ([]models.Brand, error) {
	return s.listFn(ctx)
}
func (s *brandRepoStub) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	return s.getByIDFn(ctx, id)
}

func noopBrandRepo() *brandRepoStub {
	return &brandRepoStub{
		listFn: func(_ context.Context) ([]models.Brand, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Brand, error) {
			return &models.Brand{ID: id}, nil
		},
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn    func(context.Context) ([]models.Category, error)
	getByIDFn func(context.Context, uint) (*models.Category, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id}, nil
		},
	}
}

// imageRepoStub is a stub for repository.ImageRepository.
type imageRepoStub struct {
	listByUserFn func(context.Context, uint) ([]models.Image, error)
	getByIDsFn   func(context.Context, []uint) ([]models.Image, error)
}

func (s *imageRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Image, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *imageRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Image, error) {
	return s.getByIDsFn(ctx, ids)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		listByUserFn: func(_ context.Context, _ uint) ([]models.Image, error) { return nil, nil },
		getByIDsFn: func(_ context.Context, ids []uint) ([]models.Image, error) {
			images := make([]models.Image, len(ids))
			for i, id := range ids {
				images[i] = models.Image{ID: id}
			}
			return images, nil
		},
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, models.CodeValidation, appErr.Code)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, models.CodeNotFound, appErr.Code)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, models.CodeUnauthorized, appErr.Code)
}

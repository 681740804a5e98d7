package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"
	"shopadmin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testProductID = "8f14e45f-ceea-467f-a045-23f5f1a6f2aa"

func newTestServer(
	productRepo *MockProductRepository,
	categoryRepo *MockCategoryRepository,
	brandRepo *MockBrandRepository,
	imageRepo *MockImageRepository,
) *Server {
	if productRepo == nil {
		productRepo = new(MockProductRepository)
	}
	if categoryRepo == nil {
		categoryRepo = new(MockCategoryRepository)
	}
	if brandRepo == nil {
		brandRepo = new(MockBrandRepository)
	}
	if imageRepo == nil {
		imageRepo = new(MockImageRepository)
	}
	return &Server{
		productService: service.NewProductService(productRepo, categoryRepo, brandRepo, imageRepo),
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetAdminProduct(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Get("/api/admin/products/:id", s.GetAdminProduct)

	tests := []struct {
		name           string
		productID      string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:      "Success",
			productID: testProductID,
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, testProductID).
					Return(&models.Product{ID: testProductID, Name: "Nike Air 270"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid ID",
			productID:      "not-a-uuid",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "Not Found",
			productID: "00000000-0000-0000-0000-000000000000",
			mockSetup: func() {
				mockRepo.On("GetByID", mock.Anything, "00000000-0000-0000-0000-000000000000").
					Return(nil, models.NewNotFoundError("Product", "00000000-0000-0000-0000-000000000000")).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/products/"+tt.productID, nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetAdminProducts_Filters(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Get("/api/admin/products", s.GetAdminProducts)

	mockRepo.On("List", mock.Anything, mock.Anything, service.ProductPageSize, service.ProductPageSize).
		Return([]*models.Product{{ID: testProductID}}, int64(11), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products?name=air&page=2", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["current_page"])
	assert.Equal(t, float64(11), body["total_items"])
	mockRepo.AssertExpectations(t)
}

func TestGetAdminProducts_NegativeIDFilterMeansNoConstraint(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Get("/api/admin/products", s.GetAdminProducts)

	mockRepo.On("List", mock.Anything,
		repository.ProductFilter{}, service.ProductPageSize, 0).
		Return([]*models.Product{{ID: testProductID}}, int64(1), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products?category_id=-1&brand_id=-3", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockRepo.AssertExpectations(t)
}

func TestCreateProduct(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	s := newTestServer(mockRepo, mockCategories, mockBrands, nil)

	app.Post("/api/admin/products", s.CreateProduct)

	t.Run("validation failure returns field errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			jsonBody(t, fiber.Map{"name": "", "price": 0}))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Dữ liệu không hợp lệ", body["error"])
		assert.NotEmpty(t, body["fields"])
	})

	t.Run("success", func(t *testing.T) {
		mockCategories.On("GetByID", mock.Anything, uint(1)).
			Return(&models.Category{ID: 1}, nil).Once()
		mockBrands.On("GetByID", mock.Anything, uint(2)).
			Return(&models.Brand{ID: 2}, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.On("GetByID", mock.Anything, mock.Anything).
			Return(&models.Product{Name: "Nike Air 270"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			jsonBody(t, fiber.Map{
				"name":        "Nike Air 270",
				"price":       2500000,
				"category_id": 1,
				"brand_id":    2,
			}))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Thêm sản phẩm thành công!", body["message"])
	})
}

func TestUpdateProduct_SuccessMessage(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	s := newTestServer(mockRepo, mockCategories, mockBrands, nil)

	app.Put("/api/admin/products/:id", s.UpdateProduct)

	mockRepo.On("GetByID", mock.Anything, testProductID).
		Return(&models.Product{ID: testProductID, Name: "Old"}, nil).Twice()
	mockCategories.On("GetByID", mock.Anything, uint(1)).
		Return(&models.Category{ID: 1}, nil).Once()
	mockBrands.On("GetByID", mock.Anything, uint(2)).
		Return(&models.Brand{ID: 2}, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/"+testProductID,
		jsonBody(t, fiber.Map{
			"name":        "Nike Air 270",
			"price":       2500000,
			"category_id": 1,
			"brand_id":    2,
		}))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Sửa sản phẩm thành công!", body["message"])
	mockRepo.AssertExpectations(t)
}

func TestDeleteProduct(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Delete("/api/admin/products/:id", s.DeleteProduct)

	mockRepo.On("Delete", mock.Anything, testProductID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/"+testProductID, nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Xóa sản phẩm thành công!", body["message"])
	mockRepo.AssertExpectations(t)
}

func TestBulkDeleteProducts_PartialFailure(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Delete("/api/admin/products", s.BulkDeleteProducts)

	otherID := "11111111-2222-3333-4444-555555555555"
	mockRepo.On("Delete", mock.Anything, testProductID).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, otherID).
		Return(models.NewNotFoundError("Product", otherID)).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products",
		jsonBody(t, fiber.Map{"ids": []string{testProductID, otherID}}))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Len(t, body["deleted"], 1)
	require.Len(t, body["failed"], 1)
	mockRepo.AssertExpectations(t)
}

func TestUpsertSizeCounts(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	s := newTestServer(mockRepo, nil, nil, nil)

	app.Put("/api/admin/products/sizes", s.UpsertSizeCounts)

	t.Run("invalid size", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, testProductID).
			Return(&models.Product{ID: testProductID}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/products/sizes",
			jsonBody(t, fiber.Map{
				"product_id": testProductID,
				"sizes":      []fiber.Map{{"size": 99, "quantity": 1}},
			}))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, testProductID).
			Return(&models.Product{ID: testProductID}, nil).Once()
		mockRepo.On("UpsertSize", mock.Anything, mock.Anything).Return(nil).Twice()

		req := httptest.NewRequest(http.MethodPut, "/api/admin/products/sizes",
			jsonBody(t, fiber.Map{
				"product_id": testProductID,
				"sizes": []fiber.Map{
					{"size": 38, "quantity": 0},
					{"size": 40, "quantity": 12},
				},
			}))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Cập nhật thành công!", body["message"])
	})

	mockRepo.AssertExpectations(t)
}

func TestUpdateFeedbackImages(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockProductRepository)
	mockImages := new(MockImageRepository)
	s := newTestServer(mockRepo, nil, nil, mockImages)

	app.Put("/api/admin/products/:id/update-feedback-image", s.UpdateFeedbackImages)

	mockRepo.On("GetByID", mock.Anything, testProductID).
		Return(&models.Product{ID: testProductID}, nil).Once()
	mockImages.On("GetByIDs", mock.Anything, []uint{7, 9}).
		Return([]models.Image{{ID: 7}, {ID: 9}}, nil).Once()
	mockRepo.On("ReplaceFeedbackImages", mock.Anything, testProductID, mock.Anything).
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodPut,
		"/api/admin/products/"+testProductID+"/update-feedback-image",
		jsonBody(t, fiber.Map{"image_ids": []uint{7, 9}}))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Cập nhật thành công", body["message"])
	mockRepo.AssertExpectations(t)
}

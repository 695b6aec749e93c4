package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler(t *testing.T) {
	shoes := entities.Product{ID: "p1", Name: "Shoes", Slug: "shoes", Price: 50}
	kitchen := entities.Category{ID: "c1", Name: "Kitchen", Slug: "kitchen"}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
	}{
		{
			name:   "list products with filters",
			method: http.MethodGet,
			target: "/products?category=kitchen&q=mug&featured=true",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entities.ProductFilter) bool {
					return f.CategoryID == "kitchen" && f.Search == "mug" && f.Featured != nil && *f.Featured
				})).Return([]entities.Product{shoes}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "bad featured flag",
			method:       http.MethodGet,
			target:       "/products?featured=maybe",
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "get product by slug",
			method: http.MethodGet,
			target: "/products/shoes",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProduct(mock.Anything, "shoes").Return(shoes, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing product",
			method: http.MethodGet,
			target: "/products/ghost",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProduct(mock.Anything, "ghost").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "create product",
			method: http.MethodPost,
			target: "/products",
			body:   `{"name":"Shoes","price":50,"stock":2}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Name == "Shoes" && p.Price == 50 && p.Stock == 2
				})).Return(shoes, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "create product with negative price",
			method:       http.MethodPost,
			target:       "/products",
			body:         `{"name":"Shoes","price":-5}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "duplicate slug",
			method: http.MethodPost,
			target: "/products",
			body:   `{"name":"Shoes","price":5}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, entities.ErrSlugTaken).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "partial product update",
			method: http.MethodPut,
			target: "/products/p1",
			body:   `{"price":40}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().UpdateProduct(mock.Anything, "p1", mock.MatchedBy(func(p entities.ProductPatch) bool {
					return p.Price != nil && *p.Price == 40 && p.Name == nil
				})).Return(shoes, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete product",
			method: http.MethodDelete,
			target: "/products/p1",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().DeleteProduct(mock.Anything, "p1").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "list categories",
			method: http.MethodGet,
			target: "/categories",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().ListCategories(mock.Anything).Return([]entities.Category{kitchen}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "create category without name",
			method:       http.MethodPost,
			target:       "/categories",
			body:         `{"slug":"x"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "update category",
			method: http.MethodPut,
			target: "/categories/kitchen",
			body:   `{"description":"pots"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().UpdateCategory(mock.Anything, "kitchen", mock.Anything).Return(kitchen, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete missing category",
			method: http.MethodDelete,
			target: "/categories/ghost",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().DeleteCategory(mock.Anything, "ghost").Return(entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewCatalogHandler(discardLogger(), svc), tc.method, tc.target, tc.body, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, status < http.StatusBadRequest, body["success"])
		})
	}
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	GetProduct(ctx context.Context, ref string) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, ref string, patch entities.ProductPatch) (entities.Product, error)
	DeleteProduct(ctx context.Context, ref string) error

	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategory(ctx context.Context, ref string) (entities.Category, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	UpdateCategory(ctx context.Context, ref string, patch entities.CategoryPatch) (entities.Category, error)
	DeleteCategory(ctx context.Context, ref string) error
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{ref}", h.GetProduct)
		r.Put("/{ref}", h.UpdateProduct)
		r.Delete("/{ref}", h.DeleteProduct)
	})
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Post("/", h.CreateCategory)
		r.Get("/{ref}", h.GetCategory)
		r.Put("/{ref}", h.UpdateCategory)
		r.Delete("/{ref}", h.DeleteCategory)
	})
}

// @Summary      List products
// @Description  Newest first. category accepts an id or a slug.
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category id or slug"
// @Param        q         query     string  false  "Search in name and description"
// @Param        featured  query     bool    false  "Only featured products"
// @Success      200       {object}  ProductsResponse
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      404       {object}  utils.ErrorResponse "Unknown category"
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.ProductFilter{
		CategoryID: strings.TrimSpace(q.Get("category")),
		Search:     strings.TrimSpace(q.Get("q")),
	}
	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteFieldError(w, "featured", "must be a boolean")
			return
		}
		filter.Featured = &featured
	}

	products, err := h.svc.ListProducts(ctx, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list products")
		return
	}

	res := ProductsResponse{Success: true, Products: make([]Product, 0, len(products))}
	for _, p := range products {
		res.Products = append(res.Products, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProduct looks the product up by id first and by slug second.
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        ref  path      string  true  "Product id or slug"
// @Success      200  {object}  ProductResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{ref} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "ref"))
	h.writeProduct(w, r, p, err, http.StatusOK, "failed to get product")
}

// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      ProductRequest  true  "Product"
// @Success      201      {object}  ProductResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), req.ToEntity())
	h.writeProduct(w, r, p, err, http.StatusCreated, "failed to create product")
}

// @Summary      Update product
// @Description  Partial update; absent fields are left untouched
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        ref      path      string                true  "Product id or slug"
// @Param        product  body      UpdateProductRequest  true  "Fields to change"
// @Success      200      {object}  ProductResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Router       /products/{ref} [put]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), chi.URLParam(r, "ref"), req.ToEntity())
	h.writeProduct(w, r, p, err, http.StatusOK, "failed to update product")
}

// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        ref  path      string  true  "Product id or slug"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{ref} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.DeleteProduct(ctx, chi.URLParam(r, "ref")); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete product")
		return
	}
	utils.WriteJSON(w, MessageResponse{Success: true, Message: "Product deleted"}, http.StatusOK)
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  CategoriesResponse
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.svc.ListCategories(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list categories")
		return
	}

	res := CategoriesResponse{Success: true, Categories: make([]Category, 0, len(categories))}
	for _, c := range categories {
		res.Categories = append(res.Categories, CategoryEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        ref  path      string  true  "Category id or slug"
// @Success      200  {object}  CategoryResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /categories/{ref} [get]
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCategory(r.Context(), chi.URLParam(r, "ref"))
	h.writeCategory(w, r, c, err, http.StatusOK, "failed to get category")
}

// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      CategoryRequest  true  "Category"
// @Success      201       {object}  CategoryResponse
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Router       /categories [post]
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), req.ToEntity())
	h.writeCategory(w, r, c, err, http.StatusCreated, "failed to create category")
}

// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        ref       path      string                 true  "Category id or slug"
// @Param        category  body      UpdateCategoryRequest  true  "Fields to change"
// @Success      200       {object}  CategoryResponse
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Router       /categories/{ref} [put]
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), chi.URLParam(r, "ref"), req.ToEntity())
	h.writeCategory(w, r, c, err, http.StatusOK, "failed to update category")
}

// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Param        ref  path      string  true  "Category id or slug"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /categories/{ref} [delete]
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.DeleteCategory(ctx, chi.URLParam(r, "ref")); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete category")
		return
	}
	utils.WriteJSON(w, MessageResponse{Success: true, Message: "Category deleted"}, http.StatusOK)
}

func (h *CatalogHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *CatalogHandler) writeProduct(w http.ResponseWriter, r *http.Request, p entities.Product, err error, code int, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}
	utils.WriteJSON(w, ProductResponse{Success: true, Product: ProductEntityToJSON(p)}, code)
}

func (h *CatalogHandler) writeCategory(w http.ResponseWriter, r *http.Request, c entities.Category, err error, code int, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}
	utils.WriteJSON(w, CategoryResponse{Success: true, Category: CategoryEntityToJSON(c)}, code)
}

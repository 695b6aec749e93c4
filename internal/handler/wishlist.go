package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) ([]entities.WishlistEntry, error)
	AddItem(ctx context.Context, userID, productRef string) ([]entities.WishlistEntry, error)
	RemoveItem(ctx context.Context, userID, productID string) ([]entities.WishlistEntry, error)
}

// WishlistHandler serves one wishlist surface. The embedded user wishlist and
// the standalone one are mounted as two instances with separate services.
type WishlistHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      WishlistService
	prefix   string
	surface  string
}

func NewWishlistHandler(logger *slog.Logger, svc WishlistService, prefix, surface string) *WishlistHandler {
	return &WishlistHandler{
		logger:   logger.With(slog.String("handler", "wishlist"), slog.String("surface", surface)),
		validate: newValidator(),
		svc:      svc,
		prefix:   prefix,
		surface:  surface,
	}
}

func (h *WishlistHandler) Init(r chi.Router) {
	r.Route(h.prefix, func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/", h.AddItem)
		r.Delete("/", h.RemoveItem)
		r.Delete("/{productId}", h.RemoveItem)
	})
}

// GetWishlist returns the caller's wishlist resolved against the catalog.
// @Summary      Get wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  WishlistResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /users/wishlist [get]
// @Router       /wishlist [get]
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetWishlist(r.Context(), id.UserID)
	h.write(w, r, entries, err, http.StatusOK, "failed to get wishlist")
}

// AddItem adds a product to the wishlist.
// @Summary      Add wishlist item
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item  body      WishlistRequest  true  "Product reference"
// @Success      200   {object}  WishlistResponse
// @Failure      400   {object}  utils.ErrorResponse "Already in wishlist"
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      404   {object}  utils.ErrorResponse
// @Router       /users/wishlist [post]
// @Router       /wishlist [post]
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req WishlistRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	entries, err := h.svc.AddItem(r.Context(), id.UserID, req.ProductID)
	if err == nil {
		wishlistMutations.WithLabelValues(h.surface, "add").Inc()
	}
	h.write(w, r, entries, err, http.StatusOK, "failed to add wishlist item")
}

// RemoveItem removes a product; removing a non-member is not an error.
// @Summary      Remove wishlist item
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  query     string  true  "Product ID"
// @Success      200        {object}  WishlistResponse
// @Failure      401        {object}  utils.ErrorResponse
// @Router       /users/wishlist [delete]
// @Router       /wishlist [delete]
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req WishlistRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	productID := firstNonEmpty(chi.URLParam(r, "productId"), r.URL.Query().Get("productId"), req.ProductID)
	if productID == "" {
		utils.WriteFieldError(w, "productId", "is required")
		return
	}

	entries, err := h.svc.RemoveItem(r.Context(), id.UserID, productID)
	if err == nil {
		wishlistMutations.WithLabelValues(h.surface, "remove").Inc()
	}
	h.write(w, r, entries, err, http.StatusOK, "failed to remove wishlist item")
}

func (h *WishlistHandler) write(w http.ResponseWriter, r *http.Request, entries []entities.WishlistEntry, err error, code int, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}
	utils.WriteJSON(w, WishlistResponse{Success: true, Wishlist: WishlistToJSON(entries)}, code)
}

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
)

type AddressService interface {
	ListAddresses(ctx context.Context, userID string) (entities.AddressBook, error)
	AddAddress(ctx context.Context, userID string, in entities.AddressInput) (entities.AddressBook, error)
	UpdateAddress(ctx context.Context, userID, addressID string, patch entities.AddressPatch) (entities.AddressBook, error)
	RemoveAddress(ctx context.Context, userID, addressID string) (entities.AddressBook, error)
}

type AddressHandler struct {
	logger *slog.Logger
	svc    AddressService
}

func NewAddressHandler(logger *slog.Logger, svc AddressService) *AddressHandler {
	return &AddressHandler{
		logger: logger.With(slog.String("handler", "address")),
		svc:    svc,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Route("/users/address", func(r chi.Router) {
		r.Get("/", h.ListAddresses)
		r.Post("/", h.AddAddress)
		r.Put("/", h.UpdateAddress)
		r.Delete("/", h.RemoveAddress)
		r.Put("/{addressId}", h.UpdateAddress)
		r.Delete("/{addressId}", h.RemoveAddress)
	})
}

// ListAddresses returns the caller's address book.
// @Summary      List addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AddressesResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /users/address [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	book, err := h.svc.ListAddresses(r.Context(), id.UserID)
	h.write(w, r, book, err, http.StatusOK, "failed to list addresses")
}

// AddAddress appends an address. The first address is always the default.
// @Summary      Add address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        address  body      AddressRequest  true  "Address"
// @Success      201      {object}  AddressesResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Router       /users/address [post]
func (h *AddressHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	book, err := h.svc.AddAddress(r.Context(), id.UserID, req.ToEntity())
	h.write(w, r, book, err, http.StatusCreated, "failed to add address")
}

// UpdateAddress applies a partial update to one address.
// @Summary      Update address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        address  body      UpdateAddressRequest  true  "Fields to change"
// @Success      200      {object}  AddressesResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Router       /users/address [put]
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req UpdateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	addressID := firstNonEmpty(chi.URLParam(r, "addressId"), r.URL.Query().Get("addressId"), req.AddressID)
	if addressID == "" {
		utils.WriteFieldError(w, "addressId", "is required")
		return
	}

	book, err := h.svc.UpdateAddress(r.Context(), id.UserID, addressID, req.ToEntity())
	h.write(w, r, book, err, http.StatusOK, "failed to update address")
}

// RemoveAddress deletes one address, promoting a new default if needed.
// @Summary      Remove address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        addressId  query     string  true  "Address ID"
// @Success      200        {object}  AddressesResponse
// @Failure      401        {object}  utils.ErrorResponse
// @Failure      404        {object}  utils.ErrorResponse
// @Router       /users/address [delete]
func (h *AddressHandler) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req struct {
		AddressID string `json:"addressId"`
	}
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	addressID := firstNonEmpty(chi.URLParam(r, "addressId"), r.URL.Query().Get("addressId"), req.AddressID)
	if addressID == "" {
		utils.WriteFieldError(w, "addressId", "is required")
		return
	}

	book, err := h.svc.RemoveAddress(r.Context(), id.UserID, addressID)
	h.write(w, r, book, err, http.StatusOK, "failed to remove address")
}

func (h *AddressHandler) write(w http.ResponseWriter, r *http.Request, book entities.AddressBook, err error, code int, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}
	utils.WriteJSON(w, AddressesResponse{Success: true, Addresses: AddressesToJSON(book)}, code)
}

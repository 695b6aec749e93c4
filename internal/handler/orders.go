package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order entities.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.GetOrders)
		r.Post("/update-status", h.UpdateStatus)
		r.Get("/{id}", h.GetOrderByID)
		r.Put("/{id}", h.UpdateStatus)
	})
}

// CreateOrder stores a new pending order.
// @Summary      Create order
// @Description  Creates a pending order from checkout data. Totals are stored as sent.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Checkout data"
// @Success      201    {object}  CreateOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse
// @Failure      500    {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order := req.ToEntity()
	order.UserID = ""
	if id, ok := session.FromContext(ctx); ok {
		order.UserID = id.UserID
	}

	orderID, err := h.svc.CreateOrder(ctx, order)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}
	ordersCreated.WithLabelValues("http").Inc()

	utils.WriteJSON(w, CreateOrderResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order created successfully",
	}, http.StatusCreated)
}

// GetOrders lists orders or returns the one named by orderId.
// @Summary      List orders
// @Description  Lists all orders newest first, or returns one order when orderId is given
// @Tags         orders
// @Produce      json
// @Param        orderId  query     string  false  "Order ID"
// @Success      200      {object}  OrdersResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if orderID := r.URL.Query().Get("orderId"); orderID != "" {
		h.writeOrder(w, r, orderID)
		return
	}

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	res := OrdersResponse{Success: true, Orders: make([]Order, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrderByID returns an order by its id.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  OrderResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	h.writeOrder(w, r, chi.URLParam(r, "id"))
}

func (h *OrderHandler) writeOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	ctx := r.Context()

	order, err := h.svc.GetOrder(ctx, orderID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// UpdateStatus serves both the PUT and the POST form.
// @Summary      Update order status
// @Description  Sets any known status; there are no guarded transitions
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Order ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200     {object}  OrderResponse
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /orders/{id} [put]
// @Router       /orders/update-status [post]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orderID := firstNonEmpty(chi.URLParam(r, "id"), req.OrderID)
	if orderID == "" {
		utils.WriteFieldError(w, "orderId", "is required")
		return
	}

	order, err := h.svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order status")
		return
	}
	orderStatusUpdates.WithLabelValues(string(order.Status)).Inc()

	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

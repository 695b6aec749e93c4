package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (entities.Session, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Profile(ctx context.Context, userID string) (entities.User, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
	secure   bool
}

// NewAuthHandler marks the session cookie Secure when secure is set.
func NewAuthHandler(logger *slog.Logger, svc AuthService, secure bool) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: newValidator(),
		svc:      svc,
		secure:   secure,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Get("/users/me", h.Me)
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Credentials"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Invalid input or email taken"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	s, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	h.writeSession(w, r, s, err, http.StatusCreated, "failed to register user")
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  SessionResponse
// @Failure      400          {object}  utils.ValidationErrorResponse
// @Failure      401          {object}  utils.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	s, err := h.svc.Login(r.Context(), req.Email, req.Password)
	h.writeSession(w, r, s, err, http.StatusOK, "failed to login")
}

// Me returns the profile of the session owner.
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Profile(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get profile")
		return
	}
	utils.WriteJSON(w, UserResponse{Success: true, User: UserEntityToJSON(u)}, http.StatusOK)
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
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

func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, s entities.Session, err error, code int, msg string) {
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, msg)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, SessionResponse{
		Success:   true,
		Token:     s.Token,
		ExpiresAt: formatTime(s.ExpiresAt),
		User:      UserEntityToJSON(s.User),
	}, code)
}

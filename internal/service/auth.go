package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type UserStore interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
}

type TokenIssuer interface {
	Issue(id session.Identity) (string, time.Time, error)
}

type authService struct {
	logger   *slog.Logger
	users    UserStore
	tokens   TokenIssuer
	validate *validator.Validate
	hash     func(password string) (string, error)
}

func NewAuthService(logger *slog.Logger, users UserStore, tokens TokenIssuer) *authService {
	return &authService{
		logger:   logger.With(slog.String("service", "auth")),
		users:    users,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		hash:     HashPassword,
	}
}

// HashPassword runs before a user is persisted so the store never sees a
// plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) Register(ctx context.Context, name, email, password string) (entities.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return entities.Session{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return entities.Session{}, &entities.ValidationError{Field: "email", Reason: "is invalid"}
	}
	if len(password) < minPasswordLen {
		return entities.Session{}, &entities.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", minPasswordLen),
		}
	}

	hash, err := s.hash(password)
	if err != nil {
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	u, err := s.users.CreateUser(ctx, entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleCustomer,
		Addresses:    entities.AddressBook{},
		Wishlist:     entities.WishlistItems{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entities.Session{}, err
	}

	s.logger.Info("user registered", slog.String("user_id", u.ID))
	return s.issue(u)
}

func (s *authService) Login(ctx context.Context, email, password string) (entities.Session, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Session{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return entities.Session{}, entities.ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *authService) Profile(ctx context.Context, userID string) (entities.User, error) {
	if userID == "" {
		return entities.User{}, entities.ErrUnauthorized
	}
	return s.users.GetUserByID(ctx, userID)
}

func (s *authService) issue(u entities.User) (entities.Session, error) {
	token, exp, err := s.tokens.Issue(session.Identity{UserID: u.ID, Email: u.Email})
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to issue session: %w", err)
	}
	return entities.Session{Token: token, ExpiresAt: exp, User: u}, nil
}

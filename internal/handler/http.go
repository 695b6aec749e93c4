package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/session"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// newValidator reports request fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var notFoundErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrUserNotFound,
	entities.ErrAddressNotFound,
	entities.ErrProductNotFound,
	entities.ErrCategoryNotFound,
	entities.ErrWishlistNotFound,
}

var conflictErrors = []error{
	entities.ErrAlreadyInWishlist,
	entities.ErrEmailTaken,
	entities.ErrSlugTaken,
}

// writeServiceError maps a service error to its status code. Unknown errors
// are logged and hidden behind a generic message.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteFieldError(w, ve.Field, ve.Reason)
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteFieldError(w, "status", "must be one of "+statusList())
	case errors.Is(err, entities.ErrUnauthorized), errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, matched(err, entities.ErrUnauthorized, entities.ErrInvalidCredentials), http.StatusUnauthorized)
	case entities.IsNotFound(err):
		utils.WriteError(w, matched(err, notFoundErrors...), http.StatusNotFound)
	case entities.IsConflict(err):
		utils.WriteError(w, matched(err, conflictErrors...), http.StatusBadRequest)
	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// matched returns the message of the first sentinel found in err's chain.
func matched(err error, targets ...error) string {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

func statusList() string {
	statuses := entities.OrderStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// requireIdentity writes 401 when the request carries no session.
func requireIdentity(w http.ResponseWriter, r *http.Request) (session.Identity, bool) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, entities.ErrUnauthorized.Error(), http.StatusUnauthorized)
	}
	return id, ok
}

// firstNonEmpty picks the identifier from the path, the query or the body.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

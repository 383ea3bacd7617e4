package http

import (
	"errors"
	"net/http"

	"pdca-planner/internal/goalchat"
	pkgErrors "pdca-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500 so internals never leak to the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, goalchat.ErrUserIDRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "User ID is required")
	case errors.Is(err, goalchat.ErrEmptyMessages):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Messages are required")
	case errors.Is(err, goalchat.ErrLastMessageNotUser):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Last message must be from user")
	case errors.Is(err, goalchat.ErrInvalidRole):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Message role must be user, assistant or system")
	case errors.Is(err, goalchat.ErrGenerationFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to process request")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"eventhub/internal/data/entity"
	"eventhub/internal/dto/response"
	"eventhub/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Conflict
// errors carry the colliding events and bookings in the response body so
// the caller can see exactly what is in the way.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var conflict *entity.ConflictError
	if errors.As(err, &conflict) {
		log.Warn(operation+" rejected - scheduling conflict",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseConflict(w, err.Error(), response.ConflictErrorToResponse(conflict))
		return
	}

	switch {
	case errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrResourceNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrWaitlistNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrRatingNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrEventFull),
		errors.Is(err, entity.ErrAlreadyOnList),
		errors.Is(err, entity.ErrAlreadyCancelled):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, entity.ErrResourceUnavailable),
		errors.Is(err, entity.ErrInvalidRecurrencePattern),
		errors.Is(err, entity.ErrEmailTaken):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation),
		)
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrAccessDenied):
		log.Warn(operation+" failed - access denied",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "open spots"),
		strings.Contains(err.Error(), "registration closed"),
		strings.Contains(err.Error(), "cannot change"),
		strings.Contains(err.Error(), "required"),
		strings.Contains(err.Error(), "must be"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}

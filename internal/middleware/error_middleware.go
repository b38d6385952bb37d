package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to the standard error envelope.
// The message shown is the backend's own when one was carried through.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrRefreshFailed):
		resp := dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeSessionExpired, message))
		resp.Redirect = "/login"
		c.JSON(401, resp)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)))

	case errors.Is(err, apperrors.ErrPermissionDenied), errors.Is(err, apperrors.ErrRoleNotAllowed):
		c.JSON(403, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, message)))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrEmptyRoster):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message)))

	case errors.Is(err, apperrors.ErrAttendanceExists):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrLessonNotToday),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case errors.Is(err, apperrors.ErrPartialBatch):
		// Partial batch failures are 207-style: successes stand, the
		// caller re-submits only what failed.
		c.JSON(502, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodePartialFailure, message)))

	case errors.Is(err, apperrors.ErrBackendUnavailable):
		c.JSON(502, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBackendUnavailable, message)))

	default:
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// BindError responds to a failed form binding with field-level context.
func BindError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data")
	detail = detail.WithDetails(err.Error())
	c.JSON(400, dto.NewErrorResponse(detail))
}

package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/campusreg/internal/app/models/dto"
	"github.com/derya/campusreg/internal/pkg/apperrors"
	"github.com/derya/campusreg/internal/pkg/logger"
)

// HandleAPIError maps a service error kind to the HTTP response. The
// services guarantee every failure wraps exactly one apperrors kind.
func HandleAPIError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	status := http.StatusInternalServerError

	var appErr *apperrors.Error

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
		if errors.As(err, &appErr) && appErr.Field != "" {
			detail = detail.WithField(appErr.Field)
		}
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error().Err(err).Msg("Storage failure")
		detail = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage failure")
	default:
		logger.Error().Err(err).Msg("Unhandled error")
	}

	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

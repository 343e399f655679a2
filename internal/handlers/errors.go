package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coremade/core-hp/internal/constants"
	apierrors "github.com/coremade/core-hp/internal/errors"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/services"
)

// respondServiceError maps service errors to HTTP responses. Anything not
// recognised is a store failure and becomes a 500 carrying the cause.
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrDeveloperNotFound),
		errors.Is(err, services.ErrSkillRecordNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrNoticeNotFound),
		errors.Is(err, services.ErrCodeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrSkillRecordExists),
		errors.Is(err, services.ErrDeveloperHasSkillRecords):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrInvalidYearMonth),
		errors.Is(err, services.ErrInvalidPeriod),
		errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidAssignment),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrCodeKeyRequired),
		errors.Is(err, services.ErrCodeNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(constants.ContextKeyRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Bool("retryable", repository.IsRetryable(err)).
			Msg(message)
		apierrors.InternalError(c, message, err)
	}
}

// parseIDParam reads a numeric path parameter, answering 400 when it is not one
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

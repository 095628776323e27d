package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/services"
	"github.com/sbennell/Asset-System/pkg/logger"
	"github.com/sbennell/Asset-System/pkg/response"
)

// respondError maps a service error to its HTTP response. Validation,
// duplicate and referential errors are client faults; anything unclassified
// is logged and reported as a server error without leaking detail.
func respondError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.ErrorValidation, services.ErrorDuplicate, services.ErrorReferenced:
			response.BadRequest(c, svcErr.Message)
		case services.ErrorNotFound:
			response.NotFound(c, svcErr.Message)
		default:
			response.ServerError(c, svcErr.Message)
		}
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	response.ServerError(c, "internal server error")
}

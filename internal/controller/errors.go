package controller

import (
	"net/http"

	"github.com/ankietdev/api/internal/apperr"
	"github.com/ankietdev/api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors onto HTTP statuses. Anything without an
// apperr kind is an internal failure: logged in full, reported generically.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindExpired:
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Internal error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

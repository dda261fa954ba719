package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/logger"
	"github.com/codatendechat/gateway/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Data sends a single-entity response
func (h *BaseHandler) Data(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewDataResponse(data))
}

// Created sends a 201 single-entity response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewDataResponse(data))
}

// List sends a paginated listing response
func (h *BaseHandler) List(c *gin.Context, data any, total int64, limit, offset int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, limit, offset))
}

// Directory sends an unpaginated listing response
func (h *BaseHandler) Directory(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewDirectoryResponse(data))
}

// HandleError maps a service error onto the wire. Domain errors keep their
// code and message; anything else is masked as an internal error with the
// cause in details.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(
			dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponseWithDetails(domainErr.Code, domainErr.Message, domainErr.Details),
		)
		return
	}

	logger.FromContext(c.Request.Context()).Error("Unhandled service error", zap.Error(err))
	c.JSON(
		dto.GetHTTPStatus(shared.CodeInternalError),
		dto.NewErrorResponseWithDetails(shared.CodeInternalError, "Internal server error", err.Error()),
	)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed. Range clamping happens in the services.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

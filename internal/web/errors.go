package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/job-tracker/internal/board"
	"github.com/honeycarbs/job-tracker/internal/domain"
	"github.com/honeycarbs/job-tracker/internal/export"
	"github.com/honeycarbs/job-tracker/pkg/backend"
)

func detail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": msg})
}

// bindError answers a request whose body or query could not be bound
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail(c, http.StatusBadRequest, domain.ValidationMessage(err))
		return
	}
	detail(c, http.StatusBadRequest, "invalid request: "+err.Error())
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	code := http.StatusBadGateway
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, board.ErrInvalidStatus):
		code = http.StatusBadRequest
	case errors.Is(err, export.ErrUnknownTarget):
		code = http.StatusNotFound
	default:
		if sc := backend.StatusCode(err); sc >= 400 && sc < 500 {
			code = sc
		}
	}
	detail(c, code, backend.Message(err))
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		detail(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeJSON reads the body without running binding validation, for payloads
// whose defaults are filled in by the service
func decodeJSON(c *gin.Context, v any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		detail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eenot/shareit/internal/domain"
)

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a domain error onto the HTTP status taxonomy. Anything that is
// not a typed domain error is an internal failure.
func Error(c *gin.Context, err error) {
	var (
		notFound    *domain.NotFoundError
		validation  *domain.ValidationError
		forbidden   *domain.ForbiddenError
		conflict    *domain.ConflictError
		unsupported *domain.UnsupportedStateError
	)

	switch {
	case errors.As(err, &unsupported):
		// The offending literal is echoed back, on purpose.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state: " + unsupported.State})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

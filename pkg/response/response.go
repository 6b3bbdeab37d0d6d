package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blkout/hub/internal/models"
)

// Body is the standard API response envelope.
type Body struct {
	Success bool             `json:"success"`
	Data    interface{}      `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
	Code    models.ErrorKind `json:"code,omitempty"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// BadRequest sends 400 with error message.
func BadRequest(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Error: err, Code: models.KindInvalidInput})
}

// NotFound sends 404.
func NotFound(c *gin.Context, err string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Error: err, Code: models.KindNotFound})
}

// Conflict sends 409.
func Conflict(c *gin.Context, err string) {
	c.JSON(http.StatusConflict, Body{Success: false, Error: err, Code: models.KindCapacityExceeded})
}

// Internal sends 500.
func Internal(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Error: err, Code: models.KindInternal})
}

// Error maps a domain error to its status code by kind.
func Error(c *gin.Context, err error) {
	switch models.KindOf(err) {
	case models.KindNotFound:
		NotFound(c, err.Error())
	case models.KindCapacityExceeded:
		Conflict(c, err.Error())
	case models.KindInvalidInput:
		BadRequest(c, err.Error())
	default:
		Internal(c, "internal error")
	}
}

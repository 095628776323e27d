package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every API endpoint returns.
// Code is 0 on success and mirrors the HTTP status on errors.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func write(c *gin.Context, status, code int, msg string, data interface{}) {
	c.JSON(status, Response{Code: code, Message: msg, Data: data})
}

// Success sends 200 with data wrapped in the envelope.
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, 0, "ok", data)
}

// Created sends 201 with data wrapped in the envelope.
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, 0, "created", data)
}

// Binary sends raw bytes with the given content type, bypassing the JSON
// envelope. Used for label artifacts (QR PNG, PDF).
func Binary(c *gin.Context, contentType string, data []byte) {
	c.Data(http.StatusOK, contentType, data)
}

func BadRequest(c *gin.Context, msg string) {
	write(c, http.StatusBadRequest, http.StatusBadRequest, msg, nil)
}

func Unauthorized(c *gin.Context, msg string) {
	write(c, http.StatusUnauthorized, http.StatusUnauthorized, msg, nil)
}

func Forbidden(c *gin.Context, msg string) {
	write(c, http.StatusForbidden, http.StatusForbidden, msg, nil)
}

func NotFound(c *gin.Context, msg string) {
	write(c, http.StatusNotFound, http.StatusNotFound, msg, nil)
}

func ServerError(c *gin.Context, msg string) {
	write(c, http.StatusInternalServerError, http.StatusInternalServerError, msg, nil)
}

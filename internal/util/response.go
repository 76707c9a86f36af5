package util

import (
	"net/http"

	"github.com/ME-Tii/customer-list/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a successful reply.
type Response map[string]interface{}

// business codes
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
	CodeStorage      = 50002
)

// Success writes the standard success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the standard failure envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// Fail maps a taxonomy error onto the failure envelope. Errors without a
// known kind become plain server errors.
func Fail(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Error(c, http.StatusBadRequest, CodeInvalidParam, err.Error())
	case apperr.KindAuthRequired:
		Error(c, http.StatusUnauthorized, CodeAuth, err.Error())
	case apperr.KindNotFound:
		Error(c, http.StatusNotFound, CodeNotFound, err.Error())
	case apperr.KindStorage:
		Error(c, http.StatusInternalServerError, CodeStorage, err.Error())
	default:
		Error(c, http.StatusInternalServerError, CodeServerErr, "server error")
	}
}

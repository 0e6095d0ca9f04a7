package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softpro2020/foodland/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": gin.H{"code": "bad_request", "message": msg}})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": gin.H{"code": "unauthorized", "message": msg}})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": gin.H{"code": "forbidden", "message": msg}})
}

// Err renders a typed application error with its own status code.
func Err(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"ok": false, "error": apperr.Payload(err)})
}

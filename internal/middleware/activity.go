package middleware

import (
	"github.com/ME-Tii/customer-list/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityMiddleware writes one audit row per authenticated request.
// Anonymous traffic is not recorded.
func ActivityMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user := CurrentUser(c)
		if user == nil {
			return
		}

		row := models.Activity{
			UserID:    &user.ID,
			Username:  user.Username,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&row).Error
	}
}

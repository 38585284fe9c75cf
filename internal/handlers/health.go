package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

// Health reports liveness and verifies database connectivity.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, appErrors.Wrap(err, "database unreachable"))
			return
		}
		response.Success(c, gin.H{"status": "ok"})
	}
}

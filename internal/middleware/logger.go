package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

// Logger writes one structured access log line per request, carrying the
// transaction id for correlation with the response envelope.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.WithModule("http").Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("transaction_id", c.GetString(response.TransactionIDKey)),
		)
	}
}

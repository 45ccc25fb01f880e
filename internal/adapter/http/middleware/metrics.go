package middleware

import (
	"strconv"
	"time"

	"bitbuddy/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

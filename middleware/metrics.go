package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/metrics"
)

// CollectMetrics records a duration histogram and a request counter per
// route template, method and status code.
func CollectMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	handler := c.FullPath()
	if handler == "" {
		handler = "unknown"
	}
	status := strconv.Itoa(c.Writer.Status())

	metrics.HTTPRequestDuration.WithLabelValues(handler, c.Request.Method, status).Observe(time.Since(start).Seconds())
	metrics.HTTPRequestsTotal.WithLabelValues(handler, c.Request.Method, status).Inc()
}

package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sensitiveQueryParams are redacted from logs
var sensitiveQueryParams = map[string]bool{
	"token": true, "password": true, "secret": true, "key": true,
	"auth": true, "api_key": true, "apikey": true,
}

// ObservabilityMiddleware instruments HTTP requests with metrics and logging
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		metrics.ActiveRequests.WithLabelValues(method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method).Dec()

		c.Next()

		// Route template, not the raw path, keeps label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, statusStr).Inc()

		fields := []zap.Field{
			zap.String("route", route),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if session, err := GetAdminSession(c); err == nil {
			fields = append(fields, zap.String("admin_id", session.AdminID))
		}

		if status >= 400 {
			if query := sanitizedQuery(c); len(query) > 0 {
				fields = append(fields, zap.Any("query_params", query))
			}
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("error", c.Errors.String()))
			}
		}

		logger.LogHTTPRequest(c.Request.Context(), method, c.Request.URL.Path, status, duration, fields...)
	}
}

func sanitizedQuery(c *gin.Context) map[string]string {
	query := c.Request.URL.Query()
	sanitized := make(map[string]string, len(query))
	for k, v := range query {
		if !sensitiveQueryParams[strings.ToLower(k)] && len(v) > 0 {
			sanitized[k] = v[0]
		}
	}
	return sanitized
}

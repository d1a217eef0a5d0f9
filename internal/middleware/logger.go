package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/pkg/logger"
)

// LoggerConfig controls request logging
type LoggerConfig struct {
	LogRequestBody bool
	MaxBodySize    int64
	SkipPaths      []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody: true,
		MaxBodySize:    2048,
		SkipPaths:      []string{"/health"},
	}
}

func Logger(log *logger.Logger) gin.HandlerFunc {
	return LoggerWithConfig(log, DefaultLoggerConfig())
}

// LoggerWithConfig logs one structured line per request. JSON bodies are logged
// with credentials and personal fields masked.
func LoggerWithConfig(log *logger.Logger, config LoggerConfig) gin.HandlerFunc {
	skip := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip[path] {
			c.Next()
			return
		}

		start := time.Now()

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 &&
			strings.Contains(c.ContentType(), "application/json") {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[body too large to log]"
			} else {
				raw, err := io.ReadAll(c.Request.Body)
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewReader(raw))
					requestBody = maskBody(raw)
				}
			}
		}

		c.Next()

		status := c.Writer.Status()
		fields := []logger.Field{
			logger.String("requestId", c.GetString(RequestIDKey)),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("ip", c.ClientIP()),
			logger.Int("size", c.Writer.Size()),
		}
		if userID := c.GetString(UserIDKey); userID != "" {
			fields = append(fields, logger.String("userId", userID))
		}
		if requestBody != "" {
			fields = append(fields, logger.String("body", requestBody))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func maskBody(raw []byte) string {
	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return "[unparseable body]"
	}
	masked, err := json.Marshal(hideSensitiveFields(data))
	if err != nil {
		return ""
	}
	return string(masked)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

// Intake forms carry personal data; only their shape is logged.
func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "phone", "email", "dateofbirth", "address", "street", "fullname", "name"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

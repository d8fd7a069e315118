package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger access log в одну строку на запрос
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		line := fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
		)
		if p.ErrorMessage != "" {
			line += " | " + p.ErrorMessage
		}
		return line + "\n"
	})
}

package middleware

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sbennell/Asset-System/internal/services"
)

const auditBodyLimit = 2000

var sensitiveFieldPattern = regexp.MustCompile(
	`(?i)("(?:password|old_password|new_password|secret|token)")\s*:\s*"(?:[^"\\]|\\.)*"`)

// AuditLog records write operations (POST/PUT/DELETE) to the activity log.
func AuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != "POST" && method != "PUT" && method != "DELETE" {
			c.Next()
			return
		}

		bodySnippet := captureBody(c)

		c.Next()

		userID := GetUserID(c)
		username := GetUsername(c)
		status := c.Writer.Status()

		module, action := parseRouteInfo(c.FullPath(), method)

		outcome := "Failed"
		if status >= 200 && status < 300 {
			outcome = "OK"
		}
		message := fmt.Sprintf("[Audit] %s %s %s %s", username, method, c.Request.URL.Path, outcome)

		var uid *uint
		if userID > 0 {
			uid = &userID
		}

		services.LogInfo(module, action, message, uid, c.ClientIP(), c.Request.UserAgent(), map[string]interface{}{
			"method": method,
			"path":   c.Request.URL.Path,
			"status": status,
			"body":   bodySnippet,
			"audit":  true,
		})
	}
}

// captureBody reads and restores the request body, returning a masked,
// truncated snippet suitable for the log's extra field.
func captureBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	snippet := string(raw)
	if len(snippet) > auditBodyLimit {
		snippet = snippet[:auditBodyLimit] + "...[truncated]"
	}
	return maskSensitiveFields(snippet)
}

// parseRouteInfo derives a module and action from a route pattern, e.g.
// "/api/assets/:id" + "PUT" gives module "assets", action "Update".
func parseRouteInfo(fullPath, method string) (module, action string) {
	path := strings.TrimPrefix(fullPath, "/api/")
	module, _, _ = strings.Cut(path, "/")
	if module == "" {
		module = "unknown"
	}

	switch method {
	case "POST":
		action = "Create"
	case "PUT":
		action = "Update"
	case "DELETE":
		action = "Delete"
	default:
		action = method
	}
	return module, action
}

// maskSensitiveFields blanks out credential values in a JSON body snippet.
func maskSensitiveFields(body string) string {
	return sensitiveFieldPattern.ReplaceAllString(body, `$1:"***"`)
}

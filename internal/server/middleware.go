package server

import (
	"net/http"
	"time"

	"dkp-auctioneer/internal/auth"
	handler "dkp-auctioneer/services/auction/handler"
	"dkp-auctioneer/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAdmin gates a route behind the administration capability
func RequireAdmin(authorizer auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(handler.ActorHeader)
		if actorID == "" || !authorizer.CanAdminister(actorID) {
			utils.JSONError(c, http.StatusForbidden, errForbidden, "administration privileges required")
			utils.Warn("admin route denied", map[string]any{
				"actor": actorID,
				"path":  c.Request.URL.Path,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin gates a route so only the named user or an admin may
// call it. The target user id is read from the given path parameter.
func RequireSelfOrAdmin(authorizer auth.Authorizer, userParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(handler.ActorHeader)
		if actorID != "" && (actorID == c.Param(userParam) || authorizer.CanAdminister(actorID)) {
			c.Next()
			return
		}
		utils.JSONError(c, http.StatusForbidden, errForbidden, "not permitted for this user")
		utils.Warn("self-or-admin route denied", map[string]any{
			"actor":  actorID,
			"target": c.Param(userParam),
			"path":   c.Request.URL.Path,
		})
		c.Abort()
	}
}

package middleware

import (
	"strings"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller's identity and stores the full user
// record in the request context. The browser flow carries a cookie session
// with the user ID; API clients may send a Bearer token instead. Handlers
// never touch ambient session state themselves.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromSession(c)
		if !ok {
			userID, ok = userIDFromBearer(c)
		}
		if !ok {
			utils.LogError("Unauthenticated request to %s", c.Request.URL.Path)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User %d from credentials not found: %v", userID, err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminMiddleware rejects non-admin callers with an explicit 403. It runs
// after AuthMiddleware and relies on the user it placed in the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("AdminMiddleware called without authenticated user")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}
		user, ok := userVal.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			utils.InternalServerError(c, "Invalid user in context", nil)
			c.Abort()
			return
		}
		if !user.IsAdmin {
			utils.LogError("Non-admin user %d attempted admin access to %s", user.ID, c.Request.URL.Path)
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func userIDFromSession(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	v := session.Get("user_id")
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		return 0, false
	}
	return id, true
}

func userIDFromBearer(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := utils.ValidateToken(tokenString)
	if err != nil {
		utils.LogError("Invalid token: %v", err)
		return 0, false
	}
	return userID, true
}

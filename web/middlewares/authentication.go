package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"irbana.com/pontosync/security"
	"irbana.com/pontosync/web/common"
)

const identityKey = "identity"

// Authentication checks for a valid device Bearer token and stores the
// device identity in the request context.
func Authentication(base64Secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie("irbana.DeviceCookie")
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		identity, err := security.ParseDeviceToken(tokenStr, base64Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the device identity set by Authentication, or nil when
// the route is unauthenticated.
func Identity(c *gin.Context) *security.DeviceIdentity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*security.DeviceIdentity)
	return identity
}

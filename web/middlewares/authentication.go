package middlewares

import (
	"net/http"
	"strings"

	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextClaims = "claims"
)

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid Bearer token (or session cookie) and
// resolves it to a user id and role for downstream handlers.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie("attendly.ApplicationCookie")
			if err != nil {
				// Cookie not found either
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					common.NewErrorResponse(common.CodeAuth, "missing credentials"))
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					common.NewErrorResponse(common.CodeAuth, "malformed authorization header"))
				return
			}

			tokenStr = parts[1]
		}

		// Parse and validate JWT
		token, err := parseJwt(tokenStr, jwtSecret)

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse(common.CodeAuth, "invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse(common.CodeAuth, "invalid token claims"))
			return
		}

		nameid, ok := claims["nameid"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse(common.CodeAuth, "token has no identity"))
			return
		}

		role, _ := claims["role"].(string)

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, int32(nameid))
		c.Set(ContextRole, role)

		c.Next()
	}
}

// UserID returns the authenticated user id set by Authentication.
func UserID(c *gin.Context) int32 {
	v, _ := c.Get(ContextUserID)
	id, _ := v.(int32)
	return id
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextRole) == "admin"
}

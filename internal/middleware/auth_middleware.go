package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/session"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/response"
)

// AuthMiddleware authenticates the request from the bearer token (or the
// access_token cookie) and installs a session.Session into the request
// context. Every downstream authorization check reads that explicit value.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		username, _ := claims["username"].(string)
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)

		sess := session.Session{
			EmployeeID: uint(userID),
			Username:   username,
			Name:       name,
			Role:       role,
		}

		c.Request = c.Request.WithContext(session.WithContext(c.Request.Context(), sess))
		c.Set("role", role)

		c.Next()
	}
}

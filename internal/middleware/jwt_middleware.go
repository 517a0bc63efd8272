package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims is the payload of the backend-issued customer token. The storefront
// shares the signing secret with the backend so protected views can reject
// bad tokens without a round trip.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// SetSecret must be called once at startup before any route runs.
func SetSecret(secret string) {
	if secret == "" {
		secret = "dev-secret-please-change"
	}
	jwtSecret = []byte(secret)
}

// JWTMiddleware requires a valid bearer token and sets claims plus the raw
// token (for forwarding to the backend) on the context.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			claims, err := parseToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set("auth_claims", claims)
			c.Set("auth_token", tokenString)
			return next(c)
		}
	}
}

// GetClaims extracts claims set by JWTMiddleware.
func GetClaims(c echo.Context) *Claims {
	if cl, ok := c.Get("auth_claims").(*Claims); ok {
		return cl
	}
	return nil
}

// RawToken returns the bearer token for forwarding, empty for guests.
func RawToken(c echo.Context) string {
	if t, ok := c.Get("auth_token").(string); ok {
		return t
	}
	return bearerToken(c)
}

// TryGetClaims parses the Authorization header if present. Guests get nil,
// not an error; an invalid token also degrades to guest.
func TryGetClaims(c echo.Context) *Claims {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return nil
	}
	claims, err := parseToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenMalformed
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

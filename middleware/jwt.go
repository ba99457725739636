package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Deva1502/kono-banking-application-main/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func sessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

// GenerateJWT signs a token for the user and records its session in
// Redis. Tokens are only accepted while the session entry exists, which
// makes them individually revocable (see Logout).
func GenerateJWT(userID uint, name, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.AppConfig.JwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JwtSecret))
	if err != nil {
		return "", err
	}

	err = config.GetRedisClient().Set(context.Background(), sessionKey(claims.ID), userID, config.AppConfig.JwtExpiry).Err()
	if err != nil {
		return "", err
	}

	return signed, nil
}

// DeleteSession revokes the session identified by the token's jti.
func DeleteSession(ctx context.Context, jti string) error {
	return config.GetRedisClient().Del(ctx, sessionKey(jti)).Err()
}

func parseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// JWTMiddleware authenticates the request and loads the caller's
// identity into Locals. Tokens whose session has been revoked are
// rejected even if the signature is still valid.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or malformed token!", nil)
	}

	claims, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	exists, err := config.GetRedisClient().Exists(c.Context(), sessionKey(claims.ID)).Result()
	if err != nil {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify session!", nil)
	}
	if exists == 0 {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired or revoked!", nil)
	}

	c.Locals("userId", claims.UserID)
	c.Locals("name", claims.Name)
	c.Locals("role", claims.Role)
	c.Locals("sessionId", claims.ID)

	return c.Next()
}

// Admin gates a route to admin callers. Must run after JWTMiddleware.
func Admin(c *fiber.Ctx) error {
	if c.Locals("role") != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied", nil)
	}
	return c.Next()
}

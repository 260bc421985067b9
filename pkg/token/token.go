package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/r0nnniiee/GAME-match/internal/config"
)

// Generate creates a new JWT for a given user ID.
func Generate(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return t.SignedString([]byte(config.AppConfig.JWTSecret))
}

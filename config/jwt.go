// gymserra/config/jwt.go
package config

import (
	"log/slog"
	"os"
)

var JwtKey []byte

// LoadJWTKey reads the HMAC signing key for session tokens from JWT_SECRET.
func LoadJWTKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}

package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// CachedUserData is the per-session snapshot kept in Redis so the role and
// permission lookup does not hit the database on every request.
type CachedUserData struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Rol      string   `json:"rol"`
	Permisos []string `json:"permisos"`
}

// AuthMiddleware authenticates the request from the auth_token cookie
// (Authorization: Bearer as a fallback) and loads the user's permissions
// into the Gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				handleAuthError(c, "No autenticado")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				handleAuthError(c, "Formato de autorización inválido")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Sesión inválida o expirada")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handleAuthError(c, "Sesión inválida")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			handleAuthError(c, "Sesión inválida")
			return
		}
		userID := uint(userIDFloat)

		cacheKey := fmt.Sprintf("user:%d:session", userID)
		if config.RDB != nil {
			cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
			if err == nil {
				var userData CachedUserData
				if json.Unmarshal([]byte(cached), &userData) == nil {
					setContextAndProceed(c, &userData)
					return
				}
				slog.Warn("Failed to unmarshal cached session data", "user_id", userID)
			} else if err != redis.Nil {
				slog.Error("Redis GET failed", "error", err, "user_id", userID)
			}
		}

		var dbUser models.Usuario
		if err := config.DB.Preload("Rol.Permisos").First(&dbUser, userID).Error; err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Usuario no encontrado")
			return
		}
		if dbUser.Status != "activo" {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "La cuenta está desactivada")
			return
		}

		userData := CachedUserData{
			UserID:   dbUser.ID,
			Username: dbUser.Username,
		}
		if dbUser.Rol != nil {
			userData.Rol = dbUser.Rol.Nombre
			for _, p := range dbUser.Rol.Permisos {
				userData.Permisos = append(userData.Permisos, p.Nombre)
			}
		}

		if config.RDB != nil {
			if jsonData, err := json.Marshal(userData); err == nil {
				if err := config.RDB.Set(config.Ctx, cacheKey, jsonData, 10*time.Minute).Err(); err != nil {
					slog.Error("Failed to cache session data", "error", err, "user_id", userID)
				}
			}
		}

		setContextAndProceed(c, &userData)
	}
}

func setContextAndProceed(c *gin.Context, userData *CachedUserData) {
	c.Set("user_id", userData.UserID)
	c.Set("username", userData.Username)
	c.Set("rol", userData.Rol)
	c.Set("permisos", userData.Permisos)
	c.Next()
}

// PermissionMiddleware gates a route group on a single permission name.
// The admin role passes everything.
func PermissionMiddleware(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("rol") == "admin" {
			c.Next()
			return
		}

		permisos, exists := c.Get("permisos")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Permiso denegado"})
			c.Abort()
			return
		}
		userPermisos, ok := permisos.([]string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Permiso denegado"})
			c.Abort()
			return
		}

		for _, p := range userPermisos {
			if p == required {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Permiso denegado"})
		c.Abort()
	}
}

func handleAuthError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
	c.Abort()
}

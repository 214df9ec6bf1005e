// internal/handlers/auth_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"
	"github.com/BimaSantiago/GymSerra-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

// sessionCacheKey matches the key used by the auth middleware to cache the
// user's role and permissions.
func sessionCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d:session", userID)
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler validates credentials and sets the auth_token session cookie.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Usuario y contraseña son requeridos"})
		return
	}

	var user models.Usuario
	if err := config.DB.Preload("Rol").Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Usuario o contraseña incorrectos"})
		return
	}

	if user.Status != "activo" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "La cuenta está desactivada"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Usuario o contraseña incorrectos"})
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		slog.Error("Failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No se pudo iniciar sesión"})
		return
	}

	c.SetCookie("auth_token", tokenStr, int(sessionTTL.Seconds()), "/", "", false, true)

	rolNombre := ""
	if user.Rol != nil {
		rolNombre = user.Rol.Nombre
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"nombre":    user.Nombre,
			"rol":       rolNombre,
			"avatarUrl": user.AvatarURL,
		},
	})
}

// LogoutHandler clears the session cookie and the cached session data. The
// route is public, so the user id comes from the cookie's own token.
func LogoutHandler(c *gin.Context) {
	if userID := sessionUserID(c); userID != 0 && config.RDB != nil {
		config.RDB.Del(config.Ctx, sessionCacheKey(userID))
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// sessionUserID extracts the user id from the auth_token cookie, or 0 when
// the cookie is absent or the token does not verify.
func sessionUserID(c *gin.Context) uint {
	tokenStr, err := c.Cookie("auth_token")
	if err != nil || tokenStr == "" {
		return 0
	}
	token, err := jwt.Parse(tokenStr, sessionKeyFunc)
	if err != nil || !token.Valid {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0
	}
	return uint(id)
}

func sessionKeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}
	return config.JwtKey, nil
}

// CheckSessionHandler reports whether the request carries a valid session.
// It always answers 200 so the client can branch on the flag alone.
func CheckSessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": sessionUserID(c) != 0})
}

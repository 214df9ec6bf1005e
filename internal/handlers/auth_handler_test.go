package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/BimaSantiago/GymSerra-sub000/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTestJWTKey(t *testing.T) {
	t.Helper()
	prev := config.JwtKey
	config.JwtKey = []byte("clave-de-prueba")
	t.Cleanup(func() { config.JwtKey = prev })
}

func signedSessionToken(t *testing.T, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString(config.JwtKey)
	require.NoError(t, err)
	return s
}

func TestSessionUserID(t *testing.T) {
	useTestJWTKey(t)

	c, _ := recordedContext(t, "GET", "/api/check_session")
	assert.Equal(t, uint(0), sessionUserID(c))

	c, _ = recordedContext(t, "GET", "/api/check_session")
	c.Request.AddCookie(&http.Cookie{Name: "auth_token", Value: signedSessionToken(t, 42)})
	assert.Equal(t, uint(42), sessionUserID(c))

	c, _ = recordedContext(t, "GET", "/api/check_session")
	c.Request.AddCookie(&http.Cookie{Name: "auth_token", Value: "no-es-un-token"})
	assert.Equal(t, uint(0), sessionUserID(c))
}

func TestLogoutLimpiaCookie(t *testing.T) {
	useTestJWTKey(t)

	// Logout is a public route, so the user id must come from the cookie
	// itself even though nothing in the context carries it.
	c, w := recordedContext(t, "POST", "/api/logout")
	c.Request.AddCookie(&http.Cookie{Name: "auth_token", Value: signedSessionToken(t, 7)})
	LogoutHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "auth_token=")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestCheckSessionHandler(t *testing.T) {
	useTestJWTKey(t)

	c, w := recordedContext(t, "GET", "/api/check_session")
	CheckSessionHandler(c)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body["authenticated"])

	c, w = recordedContext(t, "GET", "/api/check_session")
	c.Request.AddCookie(&http.Cookie{Name: "auth_token", Value: signedSessionToken(t, 3)})
	CheckSessionHandler(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["authenticated"])
}

package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionTTL how long an admin token stays valid.
const sessionTTL = 12 * time.Hour

// sessionStore in-memory admin sessions. The password is a shared
// secret for the admin screen, not a real security boundary; sessions
// exist so the secret is sent once per sitting instead of per request.
type sessionStore struct {
	mu       sync.Mutex
	password string
	tokens   map[string]time.Time
}

func newSessionStore(password string) *sessionStore {
	return &sessionStore{
		password: password,
		tokens:   make(map[string]time.Time),
	}
}

// login checks the password and mints a token on success.
func (s *sessionStore) login(password string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", false
	}

	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = time.Now().Add(sessionTTL)
	return token, true
}

// valid reports whether the token exists and has not expired.
func (s *sessionStore) valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// AdminLogin exchanges the admin password for a session token.
// POST /api/admin/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, ok := h.sessions.login(req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// requireAdmin middleware guarding upload, reset and status.
func (h *Handler) requireAdmin(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" || !h.sessions.valid(token) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
		return
	}
	c.Next()
}

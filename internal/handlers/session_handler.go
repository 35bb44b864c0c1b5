package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pawsitiveapps/pet-scheduler/internal/audit"
	"github.com/pawsitiveapps/pet-scheduler/internal/config"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
)

const sessionTTL = 12 * time.Hour

// SessionHandler exchanges the shared admin key for a short-lived token so
// the admin UI does not have to hold the raw key past unlock.
type SessionHandler struct {
	config *config.Config
	audit  *audit.Dispatcher
}

func NewSessionHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *SessionHandler {
	return &SessionHandler{config: cfg, audit: dispatcher}
}

type UnlockRequest struct {
	Key string `json:"key"`
}

func (h *SessionHandler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		httperr.BadRequest(c, "validation_error", "Missing key")
		return
	}

	if h.config.AdminKey == "" {
		httperr.Internal(c, "server_misconfigured", "Server misconfigured (missing ADMIN_KEY)")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.config.AdminKey)) != 1 {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}

	now := time.Now()
	expiresAt := now.Add(sessionTTL)

	claims := jwt.MapClaims{
		"scope": "admin",
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.config.SessionSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Failed to issue session token")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: "admin.unlocked",
		Entity: "session",
	})

	c.JSON(http.StatusOK, gin.H{
		"token":     signed,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}

// Lock acknowledges an explicit lock. Tokens are stateless, the client
// discards its copy and the token ages out at exp.
func (h *SessionHandler) Lock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

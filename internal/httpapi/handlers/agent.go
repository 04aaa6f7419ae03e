package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"supportbot/internal/chat"
	"supportbot/internal/common"
)

const agentTokenTTL = 12 * time.Hour

type agentLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AgentLogin authenticates the support agent configured in the environment
// and issues a bearer token for the agent console.
func (h *Handler) AgentLogin(c *gin.Context) {
	var req agentLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	if h.Cfg.AgentPasswordHash == "" {
		common.Fail(c, http.StatusForbidden, 40301, "agent login disabled")
		return
	}
	if req.Username != h.Cfg.AgentUser ||
		bcrypt.CompareHashAndPassword([]byte(h.Cfg.AgentPasswordHash), []byte(req.Password)) != nil {
		common.Fail(c, http.StatusUnauthorized, 40103, "invalid credentials")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(agentTokenTTL)),
	})
	signed, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to sign token")
		return
	}

	common.Ok(c, gin.H{"token": signed})
}

// ListEscalatedSessions is the agent's work queue.
func (h *Handler) ListEscalatedSessions(c *gin.Context) {
	sessions, err := h.ChatSvc.ListSessionsByStatus(c.Request.Context(), chat.StatusEscalated)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to list sessions")
		return
	}
	common.Ok(c, gin.H{"sessions": sessions})
}

// ResolveSession moves an escalated session to resolved once the human
// agent has handled it.
func (h *Handler) ResolveSession(c *gin.Context) {
	err := h.ChatSvc.Resolve(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40402, "escalated session not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to resolve session")
		return
	}
	common.Ok(c, gin.H{"resolved": true})
}

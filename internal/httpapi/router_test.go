package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"supportbot/internal/chat"
	"supportbot/internal/config"
	"supportbot/internal/faq"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&faq.FAQ{}, &chat.Session{}, &chat.Message{}))

	if cfg.FAQSearchLimit == 0 {
		cfg.FAQSearchLimit = faq.DefaultSearchLimit
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "test-secret"
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	return NewRouter(context.Background(), db, cfg, nil, nil)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func TestRouter_RootAndNoRoute(t *testing.T) {
	r := newTestRouter(t, config.Config{})

	w, env := do(t, r, http.MethodGet, "/api/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	w, env = do(t, r, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40400, env.Code)
}

func TestRouter_FAQCreateAndList(t *testing.T) {
	r := newTestRouter(t, config.Config{})

	w, env := do(t, r, http.MethodPost, "/api/faqs", gin.H{
		"question": "What is your refund policy?",
		"answer":   "30-day money-back guarantee.",
		"category": "Billing & Payments",
		"keywords": []string{"refund"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, env.Code)

	// Missing required fields bind-fail.
	w, env = do(t, r, http.MethodPost, "/api/faqs", gin.H{"question": "incomplete"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 10001, env.Code)

	w, env = do(t, r, http.MethodGet, "/api/faqs?category=Billing+%26+Payments", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		FAQs []faq.FAQ `json:"faqs"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.FAQs, 1)
	assert.Equal(t, "What is your refund policy?", data.FAQs[0].Question)
}

func TestRouter_ChatFlow(t *testing.T) {
	r := newTestRouter(t, config.Config{})

	w, env := do(t, r, http.MethodPost, "/api/chat/start", gin.H{"title": "order trouble"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var started struct {
		Session chat.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	sid := started.Session.SessionID
	require.Len(t, sid, 26)

	base := "/api/chat/sessions/" + sid

	// Neutral message with an empty corpus gets the generic reply.
	w, env = do(t, r, http.MethodPost, base+"/message", gin.H{"content": "how do I change my avatar?"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var turn chat.Response
	require.NoError(t, json.Unmarshal(env.Data, &turn))
	assert.False(t, turn.ShouldEscalate)
	assert.Equal(t, 0.4, turn.Confidence)

	// Keyword escalates the session.
	w, env = do(t, r, http.MethodPost, base+"/message", gin.H{"content": "this is unacceptable"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &turn))
	assert.True(t, turn.ShouldEscalate)
	assert.Equal(t, "Customer used escalation keyword: 'unacceptable'", turn.EscalationReason)

	// Escalated sessions reject further automation.
	w, env = do(t, r, http.MethodPost, base+"/message", gin.H{"content": "hello?"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40002, env.Code)

	w, env = do(t, r, http.MethodGet, base+"/messages", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Messages []chat.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history.Messages, 4)

	w, _ = do(t, r, http.MethodDelete, base, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, base, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)
}

func TestRouter_SendMessageValidation(t *testing.T) {
	r := newTestRouter(t, config.Config{})

	w, env := do(t, r, http.MethodPost, "/api/chat/sessions/01UNKNOWN/message", gin.H{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 10001, env.Code)

	w, env = do(t, r, http.MethodPost, "/api/chat/sessions/01UNKNOWN/message", gin.H{"content": "hi"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)
}

func TestRouter_AgentConsole(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	r := newTestRouter(t, config.Config{
		AgentUser:         "agent",
		AgentPasswordHash: string(hash),
	})

	// The work queue is behind the bearer token.
	w, env := do(t, r, http.MethodGet, "/api/agent/sessions", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 40101, env.Code)

	w, env = do(t, r, http.MethodPost, "/api/agent/login", gin.H{"username": "agent", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 40103, env.Code)

	w, env = do(t, r, http.MethodPost, "/api/agent/login", gin.H{"username": "agent", "password": "hunter2"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	auth := map[string]string{"Authorization": "Bearer " + login.Token}

	// Escalate a session, then work it through the console.
	_, env = do(t, r, http.MethodPost, "/api/chat/start", gin.H{}, nil)
	var started struct {
		Session chat.Session `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	sid := started.Session.SessionID

	w, _ = do(t, r, http.MethodPost, "/api/chat/sessions/"+sid+"/escalate", gin.H{"reason": "VIP callback"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/agent/sessions", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var queue struct {
		Sessions []chat.Session `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &queue))
	require.Len(t, queue.Sessions, 1)
	assert.Equal(t, chat.StatusEscalated, queue.Sessions[0].Status)

	w, env = do(t, r, http.MethodPost, "/api/agent/sessions/"+sid+"/resolve", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)

	// Resolving twice fails: the session is no longer escalated.
	w, env = do(t, r, http.MethodPost, "/api/agent/sessions/"+sid+"/resolve", nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40402, env.Code)
}

func TestRouter_AgentLoginDisabledWithoutHash(t *testing.T) {
	r := newTestRouter(t, config.Config{AgentUser: "agent"})

	w, env := do(t, r, http.MethodPost, "/api/agent/login", gin.H{"username": "agent", "password": "x"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 40301, env.Code)
}

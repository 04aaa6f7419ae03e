package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"supportbot/internal/common"
	"supportbot/internal/config"
	"supportbot/internal/httpapi/handlers"
	"supportbot/internal/httpapi/middleware"
	"supportbot/internal/store/rabbitmq"
	"supportbot/internal/store/redisstore"
)

func NewRouter(ctx context.Context, db *gorm.DB, cfg config.Config, rds *redisstore.Store, events *rabbitmq.Publisher) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(ctx, db, cfg, rds, events)

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		common.Ok(c, gin.H{"message": "AI Customer Support Bot API"})
	})

	// FAQ corpus
	api.GET("/faqs", h.ListFAQs)
	api.POST("/faqs", h.CreateFAQ)

	// Chat sessions
	api.POST("/chat/start", h.StartChatSession)
	api.GET("/chat/sessions", h.ListChatSessions)
	api.GET("/chat/sessions/:session_id", h.GetChatSession)
	api.GET("/chat/sessions/:session_id/messages", h.ListSessionMessages)
	api.POST("/chat/sessions/:session_id/message", h.SendChatMessage)
	api.POST("/chat/sessions/:session_id/escalate", h.EscalateSession)
	api.DELETE("/chat/sessions/:session_id", h.DeleteChatSession)

	// Agent console (JWT required)
	api.POST("/agent/login", h.AgentLogin)
	agentGroup := api.Group("/agent")
	agentGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	agentGroup.GET("/sessions", h.ListEscalatedSessions)
	agentGroup.POST("/sessions/:session_id/resolve", h.ResolveSession)

	return r
}

package handlers

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"supportbot/internal/ai"
	"supportbot/internal/chat"
	"supportbot/internal/config"
	"supportbot/internal/faq"
	"supportbot/internal/store/rabbitmq"
	"supportbot/internal/store/redisstore"
)

type Handler struct {
	Cfg     config.Config
	FAQSvc  *faq.Service
	ChatSvc *chat.Service
}

// NewHandler wires the services. Redis and RabbitMQ are optional: a nil
// cache disables FAQ-listing caching, a nil publisher disables escalation
// events. Absent GOOGLE_AI_API_KEY forces FAQ-fallback composition.
func NewHandler(ctx context.Context, db *gorm.DB, cfg config.Config, rds *redisstore.Store, events *rabbitmq.Publisher) *Handler {
	var cache faq.Cache
	if rds != nil {
		cache = rds
	}
	faqSvc := faq.NewService(faq.NewRepo(db), cache, cfg.FAQSearchLimit)

	reg := ai.NewRegistry()
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		return ai.NewGeminiProvider(ctx, cfg.GoogleAIKey, model)
	})

	var provider ai.Provider
	if cfg.GoogleAIKey != "" {
		p, err := reg.Get(ctx, "gemini", cfg.GeminiModel)
		if err != nil {
			zap.L().Warn("language backend unavailable, running in faq-fallback mode", zap.Error(err))
		} else {
			provider = p
		}
	} else {
		zap.L().Info("GOOGLE_AI_API_KEY not configured, running in faq-fallback mode")
	}

	var publisher chat.EscalationPublisher
	if events != nil {
		publisher = events
	}

	chatSvc := chat.NewService(chat.NewRepo(db), faqSvc, chat.NewComposer(provider), publisher)

	return &Handler{
		Cfg:     cfg,
		FAQSvc:  faqSvc,
		ChatSvc: chatSvc,
	}
}

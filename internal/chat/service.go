package chat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"supportbot/internal/common"
	"supportbot/internal/faq"
)

// ErrSessionEscalated rejects messages sent to a session that human support
// already owns.
var ErrSessionEscalated = errors.New("session has been escalated to human support")

const defaultSessionTitle = "New Conversation"

// FAQSearcher is the relevance-search capability the orchestrator consumes.
type FAQSearcher interface {
	Search(ctx context.Context, query string) ([]faq.FAQ, error)
}

// EscalationPublisher pushes escalation events to the notification queue.
// A nil publisher means events are skipped, never an error.
type EscalationPublisher interface {
	PublishEscalation(ctx context.Context, sessionID, reason string) error
}

// Response is the outcome of one orchestrated chat turn.
type Response struct {
	Message          *Message `json:"message"`
	ShouldEscalate   bool     `json:"should_escalate"`
	EscalationReason string   `json:"escalation_reason,omitempty"`
	Confidence       float64  `json:"confidence"`
}

type Service struct {
	repo     *Repo
	faqs     FAQSearcher
	composer *Composer
	events   EscalationPublisher
}

func NewService(repo *Repo, faqs FAQSearcher, composer *Composer, events EscalationPublisher) *Service {
	return &Service{repo: repo, faqs: faqs, composer: composer, events: events}
}

func (s *Service) StartSession(ctx context.Context, title string) (*Session, error) {
	if title == "" {
		title = defaultSessionTitle
	}

	sid, err := common.NewULID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		SessionID: sid,
		Title:     title,
		Status:    StatusActive,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) ListSessions(ctx context.Context) ([]Session, error) {
	return s.repo.ListSessions(ctx)
}

func (s *Service) ListSessionsByStatus(ctx context.Context, status string) ([]Session, error) {
	return s.repo.ListSessionsByStatus(ctx, status)
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return s.repo.GetSessionBySessionID(ctx, sessionID)
}

// ListMessages returns a session's history oldest first. A deleted or
// unknown session yields an empty list, not an error.
func (s *Service) ListMessages(ctx context.Context, sessionID string) ([]Message, error) {
	return s.repo.ListMessages(ctx, sessionID)
}

// SendMessage runs one turn of the decision pipeline: reject escalated
// sessions, persist the user message, escalate on trigger, otherwise rank
// FAQs, compose a reply and persist it.
func (s *Service) SendMessage(ctx context.Context, sessionID, content string) (*Response, error) {
	session, err := s.repo.GetSessionBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == StatusEscalated {
		return nil, ErrSessionEscalated
	}

	// The user message is durable even if a later step fails.
	userMsg := &Message{
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   content,
	}
	if err := s.repo.InsertMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	if should, reason := CheckEscalation(content, session); should {
		announcement := fmt.Sprintf(
			"I understand this is important to you. Your conversation has been escalated to our human support team. They will reach out to you within 2 hours during business hours. Reference ID: %s",
			refID(sessionID),
		)
		msg, err := s.escalate(ctx, sessionID, reason, announcement)
		if err != nil {
			return nil, err
		}
		return &Response{
			Message:          msg,
			ShouldEscalate:   true,
			EscalationReason: reason,
			Confidence:       0.0,
		}, nil
	}

	matches, err := s.faqs.Search(ctx, content)
	if err != nil {
		return nil, err
	}

	comp := s.composer.Compose(ctx, content, matches)

	if comp.FailedAttempt {
		if err := s.repo.IncrementFailedAttempts(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	assistantMsg := &Message{
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   comp.Text,
		Meta: &Metadata{
			Confidence: &comp.Confidence,
			FAQMatched: &comp.FAQMatched,
		},
	}
	if err := s.repo.InsertMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	if err := s.repo.TouchSession(ctx, sessionID); err != nil {
		return nil, err
	}

	return &Response{
		Message:        assistantMsg,
		ShouldEscalate: false,
		Confidence:     comp.Confidence,
	}, nil
}

// Escalate forces a session to human support on explicit request.
func (s *Service) Escalate(ctx context.Context, sessionID, reason string) (*Message, error) {
	if _, err := s.repo.GetSessionBySessionID(ctx, sessionID); err != nil {
		return nil, err
	}
	announcement := fmt.Sprintf(
		"Your conversation has been escalated to our human support team. They will reach out to you within 2 hours during business hours. Reference ID: %s",
		refID(sessionID),
	)
	return s.escalate(ctx, sessionID, reason, announcement)
}

func (s *Service) escalate(ctx context.Context, sessionID, reason, announcement string) (*Message, error) {
	if err := s.repo.MarkEscalated(ctx, sessionID, reason); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.PublishEscalation(ctx, sessionID, reason); err != nil {
			// Notification is best effort; the state change already happened.
			zap.L().Warn("escalation event publish failed",
				zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	msg := &Message{
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   announcement,
		Meta: &Metadata{
			Escalated: true,
			Reason:    reason,
		},
	}
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Resolve closes out an escalated session. Only escalated sessions resolve;
// the pipeline itself never calls this.
func (s *Service) Resolve(ctx context.Context, sessionID string) error {
	return s.repo.MarkResolved(ctx, sessionID)
}

func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.repo.GetSessionBySessionID(ctx, sessionID); err != nil {
		return err
	}
	return s.repo.DeleteSessionCascade(ctx, sessionID)
}

func refID(sessionID string) string {
	if len(sessionID) > 8 {
		return sessionID[:8]
	}
	return sessionID
}

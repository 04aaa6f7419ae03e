package chat

import "time"

const (
	StatusActive    = "active"
	StatusEscalated = "escalated"
	StatusResolved  = "resolved"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Session struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID        string    `gorm:"type:varchar(26);uniqueIndex;not null" json:"session_id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Status           string    `gorm:"type:varchar(16);index;not null" json:"status"`
	EscalationReason *string   `gorm:"type:text" json:"escalation_reason,omitempty"`
	FailedAttempts   int       `gorm:"not null;default:0" json:"failed_attempts"`
	Summary          *string   `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Session) TableName() string { return "chat_sessions" }

// Metadata is attached to assistant messages: confidence and faq_matched on
// composed replies, escalated and reason on escalation announcements.
type Metadata struct {
	Confidence *float64 `json:"confidence,omitempty"`
	FAQMatched *bool    `json:"faq_matched,omitempty"`
	Escalated  bool     `json:"escalated,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(26);index;not null" json:"session_id"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Meta      *Metadata `gorm:"serializer:json;type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

func (Message) TableName() string { return "chat_messages" }

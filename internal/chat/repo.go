package chat

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateSession(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) GetSessionBySessionID(ctx context.Context, sessionID string) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSessions returns sessions most recently touched first.
func (r *Repo) ListSessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListSessionsByStatus filters on status, most recently touched first.
func (r *Repo) ListSessionsByStatus(ctx context.Context, status string) ([]Session, error) {
	var sessions []Session
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// MarkEscalated flips the session to escalated and records the reason.
func (r *Repo) MarkEscalated(ctx context.Context, sessionID, reason string) error {
	return r.db.WithContext(ctx).Model(&Session{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{
			"status":            StatusEscalated,
			"escalation_reason": reason,
			"updated_at":        time.Now().UTC(),
		}).Error
}

// MarkResolved moves an escalated session to resolved. Returns
// gorm.ErrRecordNotFound when the session is not currently escalated.
func (r *Repo) MarkResolved(ctx context.Context, sessionID string) error {
	res := r.db.WithContext(ctx).Model(&Session{}).
		Where("session_id = ? AND status = ?", sessionID, StatusEscalated).
		Updates(map[string]any{
			"status":     StatusResolved,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementFailedAttempts bumps the counter by one, persisted immediately.
func (r *Repo) IncrementFailedAttempts(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Model(&Session{}).
		Where("session_id = ?", sessionID).
		Update("failed_attempts", gorm.Expr("failed_attempts + ?", 1)).Error
}

// TouchSession refreshes updated_at so session listings order by activity.
func (r *Repo) TouchSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Model(&Session{}).
		Where("session_id = ?", sessionID).
		Update("updated_at", time.Now().UTC()).Error
}

func (r *Repo) InsertMessage(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListMessages returns a session's messages oldest first. Same-turn messages
// can share a timestamp, so the surrogate id breaks ties.
func (r *Repo) ListMessages(ctx context.Context, sessionID string) ([]Message, error) {
	var msgs []Message
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// DeleteSessionCascade removes the session's messages, then the session.
// The two deletes are sequential and not transactional; a failure between
// them leaves an empty session rather than orphaned messages.
func (r *Repo) DeleteSessionCascade(ctx context.Context, sessionID string) error {
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&Message{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&Session{}).Error
}

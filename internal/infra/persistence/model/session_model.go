package model

import (
	"time"

	"github.com/google/uuid"

	"gatehouse/internal/domain/entity"
)

// SessionModel mirrors the 'sessions' table. Each row is one live login.
// The token itself never lands here; only its SHA-256 digest does.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Username  string    `gorm:"type:varchar(255);not null"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the persistence model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// SessionModelFromEntity converts a domain entity to its persistence model.
func SessionModelFromEntity(session *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		Username:  session.Username,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}

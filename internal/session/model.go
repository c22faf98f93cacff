package session

import (
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Session is the persisted bearer token row. A deployment holds at most one
// row per key; the data layer only ever uses the default key.
type Session struct {
	bun.BaseModel `bun:"table:admin_sessions,alias:s"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Token     string    `bun:"token,notnull" json:"token"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// NewSessionRepository creates a repository for Session entities.
func NewSessionRepository(db *bun.DB) repository.Repository[*Session] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Session]{
		NewRecord: func() *Session { return &Session{} },
		GetID: func(s *Session) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Session, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(s *Session) string {
			return s.Key
		},
	})
}

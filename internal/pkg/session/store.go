package session

import "context"

// Session binds an opaque session id to a user identity. Login writes it,
// the session middleware reads it, logout deletes it.
type Session struct {
	Id     string `json:"id"`
	UserId uint   `json:"user_id"`
}

// Store is the server-side session backend. Get returns (nil, nil) for a
// session that is absent or expired.
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionId string) (*Session, error)
	Delete(ctx context.Context, sessionId string) error
}

package authdomain

import (
	"context"
	"time"
)

// Session is the authenticated caller of a request. It lives in the request
// context and is never stored globally.
type Session struct {
	UserID    int64
	Role      Role
	ExpiresAt time.Time
}

// HasRole reports whether the session holds one of roles. Admin holds every role.
func (s *Session) HasRole(roles ...Role) bool {
	if s == nil {
		return false
	}
	if s.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// IsUser reports whether the session belongs to userID or to an admin.
func (s *Session) IsUser(userID int64) bool {
	if s == nil {
		return false
	}
	return s.UserID == userID || s.Role == RoleAdmin
}

type sessionKey struct{}

// WithSession returns ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored in ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

package authjwt

import (
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
)

// Provider defines the interface for JWT token operations.
type Provider interface {
	// GenerateToken creates a signed token for the session's user and role.
	GenerateToken(session authdomain.Session, ttl time.Duration) (string, error)

	// ValidateToken validates a token and returns the session it carries.
	ValidateToken(tokenString string) (*authdomain.Session, error)
}

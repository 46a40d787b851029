package session

import (
	"context"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
)

// Session is the authenticated identity for one request. No process-wide
// current user exists: the value is carried explicitly in the request
// context and is immutable once set.
type Session struct {
	EmployeeID uint
	Username   string
	Name       string
	Role       string
}

// IsAdmin reports whether the held identity may perform admin-only
// operations (identity management, all-employee payroll, full ledger view).
func (s Session) IsAdmin() bool {
	return s.Role == domain.RoleAdmin
}

type contextKey struct{}

// WithContext returns a context carrying the session.
func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session set by the auth middleware. The second
// return is false for unauthenticated requests.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

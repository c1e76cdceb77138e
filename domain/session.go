package domain

type Role string

const (
	RolePlayer Role = "player"
	RoleDM     Role = "dm"
)

func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleDM
}

// Session is the authenticated caller of a request.
// It replaces any process-wide "current user" state and travels in the request context.
type Session struct {
	UserID   string
	Username string
	Role     Role
}

func (s Session) IsDM() bool {
	return s.Role == RoleDM
}

package structs

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Session identifies the current actor. Created at login, destroyed at
// logout; every guarded page reads it from the session store.
type Session struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// DashboardPath returns the dashboard route a role lands on.
func DashboardPath(role string) string {
	if role == RoleAdmin {
		return "/admins/dashboard"
	}
	return "/users/dashboard"
}

package session

import (
	"time"

	"rebookz-admin/internal/apiclient"
)

const RoleAdmin = "admin"

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the signed-in admin: the marketplace token and who it belongs to.
// It lives from login until logout or ExpiresAt.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Client scopes api to this session's token.
func (s *Session) Client(api *apiclient.Client) *apiclient.Client {
	return api.WithToken(s.Token)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

// loginResponse is the marketplace's login payload: the user fields plus token.
type loginResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func (r loginResponse) user() User {
	role := r.Role
	if role == "" && r.IsAdmin {
		role = RoleAdmin
	}
	return User{ID: r.ID, Name: r.Name, Email: r.Email, Role: role}
}

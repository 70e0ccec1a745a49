package admin

import (
	"strings"
	"time"

	"rebookz-admin/internal/book"
)

const (
	// FlagShowDummyLogin shows the demo login button in the mobile app.
	FlagShowDummyLogin = "showDummyLogin"

	MinPasswordLength = 6
)

type Stats struct {
	TotalUsers  int         `json:"totalUsers"`
	TotalBooks  int         `json:"totalBooks"`
	TotalSold   int         `json:"totalSold"`
	RecentBooks []book.Book `json:"recentBooks"`
}

// ActiveListings is every book not yet sold.
func (s Stats) ActiveListings() int {
	if n := s.TotalBooks - s.TotalSold; n > 0 {
		return n
	}
	return 0
}

type Admin struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewAdmin struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *NewAdmin) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(a.Name) == "" {
		errors["name"] = "Name is required"
	}
	if strings.TrimSpace(a.Email) == "" {
		errors["email"] = "Email is required"
	} else if !strings.Contains(a.Email, "@") {
		errors["email"] = "Email is invalid"
	}
	if len(a.Password) < MinPasswordLength {
		errors["password"] = "Password must be at least 6 characters"
	}

	return errors
}

// RemoteConfig is the app-wide settings document served to the mobile app.
type RemoteConfig map[string]any

// Flag reads key as a boolean; anything else is false.
func (c RemoteConfig) Flag(key string) bool {
	v, _ := c[key].(bool)
	return v
}

type configUpdate struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type passwordReset struct {
	NewPassword string `json:"newPassword"`
}

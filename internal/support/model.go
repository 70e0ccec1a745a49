package support

import (
	"slices"
	"strings"
	"time"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

var (
	Statuses     = []string{StatusOpen, StatusInProgress, StatusClosed}
	FilterFields = []string{"status"}
)

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Ticket struct {
	ID            string    `json:"_id"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	AdminResponse string    `json:"adminResponse,omitempty"`
	ContactEmail  string    `json:"contactEmail,omitempty"`
	ContactPhone  string    `json:"contactPhone,omitempty"`
	User          *Contact  `json:"user,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StatusLabel renders the status for people, e.g. "in progress".
func (t Ticket) StatusLabel() string {
	return strings.ReplaceAll(t.Status, "_", " ")
}

// Email prefers the contact address given on the ticket over the account's.
func (t Ticket) Email() string {
	if t.ContactEmail != "" {
		return t.ContactEmail
	}
	if t.User != nil {
		return t.User.Email
	}
	return ""
}

func field(t Ticket, name string) string {
	if name == "status" {
		return t.Status
	}
	return ""
}

// Response is the admin's reply and the ticket's new status.
type Response struct {
	Status        string `json:"status"`
	AdminResponse string `json:"adminResponse"`
}

func (r *Response) Validate() map[string]string {
	errors := make(map[string]string)

	if !slices.Contains(Statuses, r.Status) {
		errors["status"] = "Unknown ticket status"
	}
	if r.Status == StatusClosed && strings.TrimSpace(r.AdminResponse) == "" {
		errors["adminResponse"] = "A response is required to close a ticket"
	}

	return errors
}

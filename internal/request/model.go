package request

import (
	"time"

	"rebookz-admin/internal/book"
	"rebookz-admin/internal/category"
)

const (
	StatusActive    = "active"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

var (
	Statuses     = []string{StatusActive, StatusFulfilled, StatusCancelled}
	FilterFields = []string{"status"}
)

type Requester struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Request is a reader asking for a book nobody has listed yet.
type Request struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	User        Requester `json:"user"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r Request) IsActive() bool { return r.Status == StatusActive }

func field(r Request, name string) string {
	if name == "status" {
		return r.Status
	}
	return ""
}

type statusRequest struct {
	Status string `json:"status"`
}

// Draft prefills a book listing from r. The category is resolved against all
// by name, case-insensitively; an unknown name is kept as typed.
func Draft(r Request, all []category.Category) book.NewBook {
	draft := book.NewBook{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Condition:   book.ConditionGood,
		Type:        book.TypeSell,
		Location:    book.DefaultLocation,
	}
	if c, ok := category.FindByName(all, r.Category); ok {
		draft.Category = c.Name
		draft.CategoryID = c.Num
	}
	return draft
}

// ActiveCount is the number of requests still waiting for a book.
func ActiveCount(items []Request) int {
	n := 0
	for _, r := range items {
		if r.IsActive() {
			n++
		}
	}
	return n
}

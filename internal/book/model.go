package book

import (
	"slices"
	"strings"
	"time"
)

const (
	TypeSell   = "sell"
	TypeDonate = "donate"
	TypeRent   = "rent"
	TypeSwap   = "swap"

	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"

	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

var (
	Types      = []string{TypeSell, TypeRent, TypeSwap, TypeDonate}
	Conditions = []string{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor}
	Statuses   = []string{StatusAvailable, StatusSold, StatusRented}

	// FilterFields are the list filters besides the keyword.
	FilterFields = []string{"category", "type", "status"}

	DefaultLocation = Location{Address: "Riyadh", Lat: 24.7136, Lng: 46.6753}
)

type Seller struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Book struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	CategoryID    int       `json:"categoryId,omitempty"`
	Subcategory   string    `json:"subcategory,omitempty"`
	SubcategoryID int       `json:"subcategoryId,omitempty"`
	Type          string    `json:"type"`
	Condition     string    `json:"condition,omitempty"`
	Status        string    `json:"status"`
	Images        []string  `json:"images"`
	Seller        Seller    `json:"seller"`
	School        string    `json:"school,omitempty"`
	ClassLevel    string    `json:"classLevel,omitempty"`
	SellerPhone   string    `json:"sellerPhone,omitempty"`
	Location      *Location `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Cover is the first image path, or "".
func (b Book) Cover() string {
	if len(b.Images) == 0 {
		return ""
	}
	return b.Images[0]
}

// NewBook is the create payload. Images is filled by the service from the
// uploaded cover.
type NewBook struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	CategoryID    int      `json:"categoryId"`
	Subcategory   string   `json:"subcategory"`
	SubcategoryID int      `json:"subcategoryId"`
	Condition     string   `json:"condition"`
	Type          string   `json:"type"`
	Location      Location `json:"location"`
	School        string   `json:"school,omitempty"`
	ClassLevel    string   `json:"classLevel,omitempty"`
	SellerPhone   string   `json:"sellerPhone,omitempty"`
	Images        []string `json:"images"`
}

func (b *NewBook) applyDefaults() {
	b.Title = strings.TrimSpace(b.Title)
	if b.Condition == "" {
		b.Condition = ConditionGood
	}
	if b.Type == "" {
		b.Type = TypeSell
	}
	if b.Location == (Location{}) {
		b.Location = DefaultLocation
	}
	if b.Images == nil {
		b.Images = []string{}
	}
}

func (b *NewBook) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(b.Title) == "" {
		errors["title"] = "Title is required"
	}
	if strings.TrimSpace(b.Category) == "" {
		errors["category"] = "Category is required"
	}
	if b.Price < 0 {
		errors["price"] = "Price cannot be negative"
	}
	if b.Type != "" && !slices.Contains(Types, b.Type) {
		errors["type"] = "Unknown listing type"
	}
	if b.Condition != "" && !slices.Contains(Conditions, b.Condition) {
		errors["condition"] = "Unknown condition"
	}

	return errors
}

// UpdateBook is a partial update; nil fields are left untouched.
type UpdateBook struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Condition   *string  `json:"condition,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (u *UpdateBook) empty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil &&
		u.Type == nil && u.Condition == nil && u.Status == nil
}

func (u *UpdateBook) Validate() map[string]string {
	errors := make(map[string]string)

	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errors["title"] = "Title cannot be empty"
	}
	if u.Price != nil && *u.Price < 0 {
		errors["price"] = "Price cannot be negative"
	}
	if u.Type != nil && !slices.Contains(Types, *u.Type) {
		errors["type"] = "Unknown listing type"
	}
	if u.Condition != nil && !slices.Contains(Conditions, *u.Condition) {
		errors["condition"] = "Unknown condition"
	}
	if u.Status != nil && !slices.Contains(Statuses, *u.Status) {
		errors["status"] = "Unknown status"
	}

	return errors
}

// Apply copies the set fields onto b.
func (u UpdateBook) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.Price != nil {
		b.Price = *u.Price
	}
	if u.Type != nil {
		b.Type = *u.Type
	}
	if u.Condition != nil {
		b.Condition = *u.Condition
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
}

type listResponse struct {
	Books []Book `json:"books"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Total int    `json:"total"`
}

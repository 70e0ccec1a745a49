package category

import (
	"slices"
	"strings"
)

const DefaultIcon = "book"

// Icons are the icon identifiers the mobile app knows how to draw.
var Icons = []string{
	"book", "library", "school", "business", "code", "flask", "earth", "color-palette",
	"fitness", "restaurant", "medical", "car", "game-controller", "notebook", "target",
	"graduation-cap", "atom", "calculator", "globe", "government", "gear", "bookmark",
	"file-text", "feather", "heart", "search", "sparkles", "rocket", "cpu", "shirt",
	"briefcase", "image", "smile", "comic",
}

// Category is one node of the category tree. ID is the document id used for
// deletes; Num is the numeric id parent links refer to.
type Category struct {
	ID          string `json:"_id"`
	Num         int    `json:"id"`
	Name        string `json:"name"`
	IconName    string `json:"icon_name"`
	ParentID    *int   `json:"parent_id"`
	HasChild    bool   `json:"has_child"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (c Category) IsTopLevel() bool { return c.ParentID == nil }

// Icon returns IconName, or DefaultIcon when it is not a known identifier.
func (c Category) Icon() string { return ValidIcon(c.IconName) }

type NewCategory struct {
	Name        string `json:"name"`
	IconName    string `json:"icon_name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id"`
	HasChild    bool   `json:"has_child"`
}

func (c *NewCategory) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		errors["name"] = "Name is required"
	}

	return errors
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Num  int
	Name string
}

func ValidIcon(name string) string {
	if slices.Contains(Icons, name) {
		return name
	}
	return DefaultIcon
}

// TopLevel returns the categories without a parent.
func TopLevel(all []Category) []Category {
	return Children(all, nil)
}

// Children returns the direct children of parent; a nil parent means the root.
func Children(all []Category, parent *int) []Category {
	out := make([]Category, 0)
	for _, c := range all {
		switch {
		case parent == nil && c.ParentID == nil:
			out = append(out, c)
		case parent != nil && c.ParentID != nil && *c.ParentID == *parent:
			out = append(out, c)
		}
	}
	return out
}

// FindByName matches name case-insensitively, ignoring surrounding spaces.
func FindByName(all []Category, name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range all {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c, true
		}
	}
	return Category{}, false
}

// FindByNum returns the category whose numeric id is num.
func FindByNum(all []Category, num int) (Category, bool) {
	for _, c := range all {
		if c.Num == num {
			return c, true
		}
	}
	return Category{}, false
}

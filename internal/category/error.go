package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoChildren       = errors.New("category has no subcategories")
	ErrCrumbOutOfRange  = errors.New("breadcrumb index out of range")
	ErrCategoryID       = errors.New("category id is required")
)

package book

import "errors"

var (
	ErrBookIDRequired   = errors.New("book id is required")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

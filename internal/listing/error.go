package listing

import "errors"

var (
	ErrNoNextPage        = errors.New("already on the last page")
	ErrNoPrevPage        = errors.New("already on the first page")
	ErrStaleResponse     = errors.New("response superseded by a newer request")
	ErrUnknownFilter     = errors.New("unknown filter field")
	ErrItemNotFound      = errors.New("item not in the current list")
	ErrDeleteUnsupported = errors.New("items of this list cannot be deleted")
	ErrMissingIDFunc     = errors.New("listing: Config.ID is required")
	ErrMissingSource     = errors.New("listing: source is required")
)

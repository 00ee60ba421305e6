package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrVenueRequired = errors.New("venue place_id or name is required")
	ErrUserRequired  = errors.New("user id is required")
	ErrDishRequired  = errors.New("dish name is required")
)

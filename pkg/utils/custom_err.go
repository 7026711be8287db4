package utils

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrRouteNotFound       = errors.New("route not found")
	ErrCostNotFound        = errors.New("cost not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrContactNotFound     = errors.New("emergency contact not found")
	ErrAccountNotFound     = errors.New("account not found")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyMember      = errors.New("already a member")
	ErrNotMember          = errors.New("not a member")

	ErrWeatherUnavailable = errors.New("weather provider unavailable")
	ErrDatabaseError      = errors.New("database error")
)

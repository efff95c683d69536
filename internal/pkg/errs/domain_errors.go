package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTypeNotFound = errors.New("room type not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyBooked       = errors.New("room already booked for the requested dates")
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrInvalidStatusChange = errors.New("invalid booking status change")
	ErrInvalidStay         = errors.New("invalid stay")
	ErrCannotQuote         = errors.New("cannot quote")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

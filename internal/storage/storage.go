package storage

import "errors"

// Sentinel errors shared by the storage layer and the HTTP handlers. The
// postgres implementation translates driver-level failures (missing rows,
// unique-constraint violations) into these before they leave the package.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("user is already registered for this event")
	ErrEventFull            = errors.New("event is at full capacity")
	ErrEventInPast          = errors.New("cannot register for past events")
	ErrEmailTaken           = errors.New("email is already taken")
	ErrInvalidCapacity      = errors.New("capacity must be between 1 and 1000")
)

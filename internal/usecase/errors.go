package usecase

import "errors"

// Sentinel errors shared by every service. Domain packages carry their
// own finer-grained sentinels; services wrap those (or raw repo errors)
// in one of these so the transport layer can map them without knowing
// each domain.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

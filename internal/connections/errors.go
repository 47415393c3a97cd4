package connections

import "errors"

// Validation and authorization outcomes of the connection engine. Handlers
// map these to HTTP status codes; nothing here is process-fatal.
var (
	ErrInvalidRole         = errors.New("connection must go from a tourist to a guide")
	ErrSelfConnection      = errors.New("cannot send a connection request to yourself")
	ErrEmptyMessage        = errors.New("connection request message is required")
	ErrNotFound            = errors.New("connection not found")
	ErrNotAuthorized       = errors.New("not authorized to update this connection")
	ErrAlreadyFinalized    = errors.New("connection request has already been processed")
	ErrInvalidTargetStatus = errors.New("status must be accepted, rejected or withdrawn")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown content type.
	ErrUnsupportedType = errors.New("unsupported content type")

	// ErrSchemaViolation indicates frontmatter failed its
	// content type's schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrCMSUnavailable indicates the CMS client is not configured.
	ErrCMSUnavailable = errors.New("CMS client unavailable")
)

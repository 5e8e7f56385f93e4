// Package common defines shared constants and sentinel errors used across
// the layers of taskboard. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Project/task-specific errors.
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")

	// Persistence errors. A failed write-through surfaces wrapped in this
	// sentinel so the transport can tell storage faults from domain errors.
	ErrorStorage = errors.New("storage failure")
)

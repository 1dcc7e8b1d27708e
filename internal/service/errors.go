package service

import (
	"errors"

	"linkshortener/internal/repository"
)

var (
	ErrNotFound             = errors.New("link not found")
	ErrSlugConflict         = errors.New("slug already in use")
	ErrSlugExhausted        = errors.New("could not allocate a free slug")
	ErrLinkDisabled         = errors.New("link is disabled")
	ErrNoAccessLogs         = errors.New("no access logs for slug")
	ErrNoSlugs              = errors.New("slug or slugs is required")
	ErrInvalidRange         = errors.New("invalid date range")
	ErrInvalidGroupBy       = errors.New("group_by must be day or hour")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationClosed   = errors.New("admin registration is disabled")
	ErrInvalidCreationToken = errors.New("invalid creation token")
	ErrAdminExists          = errors.New("admin already exists")
	ErrInvalidUsername      = errors.New("username is required")
	ErrWeakPassword         = errors.New("password must be at least 8 characters")

	// ErrUnavailable marks failures caused by the store being unreachable.
	ErrUnavailable = repository.ErrUnavailable
)

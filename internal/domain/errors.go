package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNoDraft       = errors.New("no draft in progress")
	ErrInvalidItem   = errors.New("required fields missing")
)

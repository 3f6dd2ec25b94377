package domain

import "errors"

var (
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidColor         = errors.New("invalid project color")
	ErrMissingDeadline      = errors.New("deadline is required")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidTitle         = errors.New("invalid title")
	ErrInvalidDescription   = errors.New("invalid description")
	ErrMissingProject       = errors.New("project is required")
	ErrInvalidAvatarURL     = errors.New("invalid avatar url")
	ErrInvalidName          = errors.New("invalid name")
)

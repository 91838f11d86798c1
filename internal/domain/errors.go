package domain

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrContractorNotFound   = errors.New("contractor not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyOrder           = errors.New("no items in order")
	ErrCityNotSupported     = errors.New("city not supported")
)

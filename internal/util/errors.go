package util

import "errors"

var (
	ErrSessionNotFound     = errors.New("assessment session not found or expired")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnknownSortKey      = errors.New("unknown sort key")
)

// Package domain holds cross-cutting domain sentinels.
package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrClassNotFound signals a missing class snapshot.
	ErrClassNotFound = errors.New("class not found")
	// ErrPresetNotFound signals an unknown preset name.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrInvalidRequest signals invalid search parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrHistoryDisabled signals that search history is not configured.
	ErrHistoryDisabled = errors.New("search history disabled")
)

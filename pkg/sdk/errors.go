package classdex

import "github.com/fitlocal/classdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrClassNotFound   = domain.ErrClassNotFound
	ErrPresetNotFound  = domain.ErrPresetNotFound
	ErrInvalidRequest  = domain.ErrInvalidRequest
	ErrHistoryDisabled = domain.ErrHistoryDisabled
)

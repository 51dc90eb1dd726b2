// Package history defines the recent-search log entry.
package history

import "time"

// Entry is one recorded search invocation.
type Entry struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	Scope         string    `json:"scope"`
	SortBy        string    `json:"sort_by"`
	ActiveFilters int       `json:"active_filters"`
	ResultCount   int       `json:"result_count"`
	SearchedAt    time.Time `json:"searched_at"`
}

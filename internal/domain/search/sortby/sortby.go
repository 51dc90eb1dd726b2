// Package sortby defines the result ordering strategies.
package sortby

// Strategy is the result ordering strategy.
type Strategy string

// Strategy constants.
const (
	// Relevance orders exact query matches first. The exact-match predicate
	// is never derived true anywhere in the pipeline, so this strategy
	// currently preserves input order. Kept as a named gap on purpose; do
	// not attach a scoring function here.
	Relevance Strategy = "relevance"
	PriceAsc  Strategy = "price_asc"
	PriceDesc Strategy = "price_desc"
	Rating    Strategy = "rating"
	// Distance orders ascending by distance from the user location.
	// Without a user location it preserves input order.
	Distance Strategy = "distance"
	DateAsc  Strategy = "date_asc"
	DateDesc Strategy = "date_desc"
	// Popularity proxies to rating descending; there is no independent
	// popularity signal in the catalog.
	Popularity Strategy = "popularity"
	// Newest proxies to date_desc.
	Newest Strategy = "newest"
)

// Default is the strategy used when none is supplied.
const Default = Relevance

// IsValid checks if the strategy is one of the supported values.
func (s Strategy) IsValid() bool {
	switch s {
	case Relevance, PriceAsc, PriceDesc, Rating, Distance,
		DateAsc, DateDesc, Popularity, Newest:
		return true
	}
	return false
}

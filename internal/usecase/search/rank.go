package search

import (
	"sort"
	"time"

	"github.com/fitlocal/classdex/internal/domain/geo"
	"github.com/fitlocal/classdex/internal/domain/search/result"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

// farFuture is the date sentinel for variants without a schedule; they sort
// last ascending and are treated as far-future uniformly for descending.
var farFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// rankItems orders a fresh copy of items by the given strategy. The input
// slice is never modified. Missing values follow fixed conventions: no
// price compares as zero, no coordinate as unreachable, no start date as
// far future. Distance ordering without a user location preserves input
// order.
func rankItems(items []result.Item, strategy sortby.Strategy, userLoc *geo.Coordinate) []result.Item {
	out := make([]result.Item, len(items))
	copy(out, items)

	switch strategy {
	case sortby.Relevance:
		// Exact matches first. ExactMatch is never derived true, so this
		// keeps input order; see sortby.Relevance.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ExactMatch() && !out[j].ExactMatch()
		})
	case sortby.PriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]) < priceOf(out[j])
		})
	case sortby.PriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]) > priceOf(out[j])
		})
	case sortby.Rating, sortby.Popularity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating() > out[j].Rating()
		})
	case sortby.Distance:
		if userLoc == nil {
			return out
		}
		sort.SliceStable(out, func(i, j int) bool {
			return distanceOf(out[i], *userLoc) < distanceOf(out[j], *userLoc)
		})
	case sortby.DateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return startOf(out[i]).Before(startOf(out[j]))
		})
	case sortby.DateDesc, sortby.Newest:
		sort.SliceStable(out, func(i, j int) bool {
			return startOf(out[i]).After(startOf(out[j]))
		})
	}

	return out
}

func priceOf(it result.Item) float64 {
	p, _ := it.Price()
	return p
}

func distanceOf(it result.Item, from geo.Coordinate) float64 {
	c, ok := it.Coordinate()
	if !ok {
		return geo.Unreachable
	}
	return geo.DistanceKm(from, c)
}

func startOf(it result.Item) time.Time {
	t, ok := it.StartAt()
	if !ok {
		return farFuture
	}
	return t
}

package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// SortMode selects the ordering of a package listing.
type SortMode string

const (
	// SortPriceAsc orders by budget per day, cheapest first.
	SortPriceAsc SortMode = "price-asc"
	// SortPriceDesc orders by budget per day, most expensive first.
	SortPriceDesc SortMode = "price-desc"
	// SortPopularity orders by popularity, most popular first.
	SortPopularity SortMode = "popularity"
	// SortRating orders by rating, best rated first.
	SortRating SortMode = "rating"
)

// ParseSortMode maps a raw sortBy value to a SortMode.
// Unknown and empty values fall back to SortPriceAsc.
func ParseSortMode(raw string) SortMode {
	switch mode := SortMode(raw); mode {
	case SortPriceAsc, SortPriceDesc, SortPopularity, SortRating:
		return mode
	default:
		return SortPriceAsc
	}
}

// String returns the string representation of the SortMode.
func (m SortMode) String() string {
	return string(m)
}

// PackageQuery filters active packages of one destination.
// Both budget bounds are inclusive and independently optional.
type PackageQuery struct {
	DestinationID primitive.ObjectID
	MinBudget     *float64
	MaxBudget     *float64
	SortBy        SortMode
}

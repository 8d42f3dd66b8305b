// Package entity contains the core business objects of the project.
package entity

import "slices"

// Category classifies a destination for browsing.
type Category string

const (
	// CategoryBeach groups coastal destinations.
	CategoryBeach Category = "Beach"
	// CategoryMountainsOutdoors groups hill stations, treks and national parks.
	CategoryMountainsOutdoors Category = "Mountains & Outdoors"
	// CategoryCultureHeritage groups historic and cultural destinations.
	CategoryCultureHeritage Category = "Culture & Heritage"
)

// Categories lists every accepted destination category in display order.
var Categories = []Category{
	CategoryBeach,
	CategoryMountainsOutdoors,
	CategoryCultureHeritage,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the accepted values.
func (c Category) IsValid() bool {
	return slices.Contains(Categories, c)
}

// CategoryNames returns the accepted categories as plain strings.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.String()
	}

	return names
}

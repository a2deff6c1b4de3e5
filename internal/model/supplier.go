package model

// Contact is a named point of contact at a supplier.
type Contact struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Supplier is an immutable supplier record. Suppliers enter the store via
// seeding or import and are never updated in place.
type Supplier struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Categories          []string  `json:"categories"`
	Rating              float64   `json:"rating"`
	AvgPrice            float64   `json:"avg_price"`
	SustainabilityScore int       `json:"sustainability_score"`
	Locations           []string  `json:"locations"`
	Contacts            []Contact `json:"contacts"`
}

// HasCategory reports whether the supplier lists the category.
// Matching is exact and case-sensitive, as stored.
func (s Supplier) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasLocation reports whether the supplier operates in the location.
func (s Supplier) HasLocation(location string) bool {
	for _, l := range s.Locations {
		if l == location {
			return true
		}
	}
	return false
}

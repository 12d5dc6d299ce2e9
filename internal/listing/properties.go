// internal/listing/properties.go
package listing

// Property is one showcase entry on the top properties page. The data is
// curated and static; it is display-only and never feeds the projection
// engine.
type Property struct {
	ID           int
	Title        string
	Location     string
	SquareFt     int
	BuiltYear    int
	Price        int
	MonthlyRent  int
	CapRate      float64
	PropertyType string
}

// GrossYield is the advertised annual rent as a percent of the asking
// price.
func (p Property) GrossYield() float64 {
	if p.Price == 0 {
		return 0
	}
	return float64(p.MonthlyRent*12) / float64(p.Price) * 100
}

var topProperties = []Property{
	{
		ID:           1,
		Title:        "3BR/2BA Single Family Home",
		Location:     "Indianapolis, IN",
		SquareFt:     1950,
		BuiltYear:    2005,
		Price:        185000,
		MonthlyRent:  1550,
		CapRate:      8.5,
		PropertyType: "Single Family Home",
	},
	{
		ID:           2,
		Title:        "Duplex - 2 Units",
		Location:     "Cleveland, OH",
		SquareFt:     2200,
		BuiltYear:    2000,
		Price:        225000,
		MonthlyRent:  2100,
		CapRate:      9.2,
		PropertyType: "Duplex",
	},
	{
		ID:           3,
		Title:        "3BR/2.5BA Townhouse",
		Location:     "Memphis, TN",
		SquareFt:     1800,
		BuiltYear:    2012,
		Price:        195000,
		MonthlyRent:  1650,
		CapRate:      8.2,
		PropertyType: "Townhouse",
	},
	{
		ID:           4,
		Title:        "Triplex - 3 Units",
		Location:     "Tampa, FL",
		SquareFt:     3000,
		BuiltYear:    2008,
		Price:        350000,
		MonthlyRent:  3300,
		CapRate:      9.5,
		PropertyType: "Triplex",
	},
	{
		ID:           5,
		Title:        "4BR/3BA Single Family Home",
		Location:     "Birmingham, AL",
		SquareFt:     2500,
		BuiltYear:    2015,
		Price:        210000,
		MonthlyRent:  1830,
		CapRate:      8.7,
		PropertyType: "Single Family Home",
	},
}

// TopProperties returns the showcase listing in display order.
func TopProperties() []Property {
	return topProperties
}

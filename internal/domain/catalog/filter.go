package catalog

import "strings"

type Category string

const (
	CategorySedan       Category = "sedan"
	CategorySUV         Category = "suv"
	CategoryHatchback   Category = "hatchback"
	CategoryLuxury      Category = "luxury"
	CategoryVan         Category = "van"
	CategoryConvertible Category = "convertible"
)

var Categories = []string{
	string(CategorySedan), string(CategorySUV), string(CategoryHatchback),
	string(CategoryLuxury), string(CategoryVan), string(CategoryConvertible),
}

var Transmissions = []string{"manual", "automatic"}

var FuelTypes = []string{"petrol", "diesel", "electric", "hybrid"}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidCategory(v string) bool     { return oneOf(v, Categories) }
func ValidTransmission(v string) bool { return oneOf(v, Transmissions) }
func ValidFuelType(v string) bool     { return oneOf(v, FuelTypes) }

// CarFilter narrows the public car listing. Zero values mean "no filter".
type CarFilter struct {
	Search          string
	MinPrice        *float64
	MaxPrice        *float64
	Brands          []string
	Categories      []string
	Transmissions   []string
	IncludeUnlisted bool
}

// Normalize lower-cases list filters and drops blanks.
func (f CarFilter) Normalize() CarFilter {
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	f.Brands = normalizeList(f.Brands)
	f.Categories = normalizeList(f.Categories)
	f.Transmissions = normalizeList(f.Transmissions)
	return f
}

func normalizeList(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

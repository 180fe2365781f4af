package models

// Package is an activity or amenity add-on bookable alongside a stay.
// Price is per person.
type Package struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ActivityPackages is the fixed activity catalog from the excursions page.
var ActivityPackages = []Package{
	{Name: "Diamond Head Adventure Package", Price: 189},
	{Name: "Ocean Explorer Package", Price: 299},
	{Name: "Cultural Immersion Package", Price: 249},
	{Name: "Mountain Explorer Hiking Package", Price: 225},
	{Name: "Ultimate Beach Day Package", Price: 199},
	{Name: "Pearl Harbor Historical Package", Price: 179},
}

// AmenityPackages is the fixed on-property amenity catalog.
var AmenityPackages = []Package{
	{Name: "Spa & Wellness Package", Price: 299},
	{Name: "Fitness & Recreation Package", Price: 199},
	{Name: "Dining & Culinary Package", Price: 349},
	{Name: "Business & Conference Package", Price: 449},
	{Name: "Romance & Couples Package", Price: 399},
	{Name: "Family Fun Package", Price: 279},
}

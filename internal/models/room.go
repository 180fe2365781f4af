package models

// RoomType describes a bookable room category with its nightly rate.
type RoomType struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"nightlyRate"`
	Description string  `json:"description"`
}

// RoomTypes is the fixed room catalog. Booking records may carry either
// the key or the display name in their roomType column.
var RoomTypes = []RoomType{
	{
		Key:         "standard",
		Name:        "Standard Room",
		NightlyRate: 150,
		Description: "Island views, king or two queen beds, modern amenities",
	},
	{
		Key:         "singleKing",
		Name:        "Ocean View Suite",
		NightlyRate: 220,
		Description: "Panoramic ocean views, king bed, private lanai",
	},
	{
		Key:         "doubleKing",
		Name:        "Double King Suite",
		NightlyRate: 380,
		Description: "Separate living area, two king beds, butler service",
	},
}

// RoomRate returns the nightly rate for a room type key or display name.
func RoomRate(roomType string) (float64, bool) {
	for _, rt := range RoomTypes {
		if rt.Key == roomType || rt.Name == roomType {
			return rt.NightlyRate, true
		}
	}
	return 0, false
}

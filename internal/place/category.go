// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package place

// Category is the kind of food amenity of a place.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryFastFood   Category = "fast_food"
	CategoryBar        Category = "bar"
	CategoryUnknown    Category = "unknown"
)

// Categories lists the known categories in the order they are presented.
var Categories = []Category{CategoryRestaurant, CategoryCafe, CategoryFastFood, CategoryBar, CategoryUnknown}

// ParseCategory maps an OSM amenity value to a Category. Anything that is not one of the known
// food amenities maps to CategoryUnknown.
func ParseCategory(amenity string) Category {
	switch Category(amenity) {
	case CategoryRestaurant, CategoryCafe, CategoryFastFood, CategoryBar:
		return Category(amenity)
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	return string(c)
}

package catalog

import "strings"

type Hotel struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	PricePerNight int      `json:"price"`
	Neighborhood  string   `json:"neighborhood"`
	Amenities     []string `json:"amenities"`
	WhyFits       string   `json:"whyFits"`
}

type Place struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Rating    float64 `json:"rating"`
	Duration  string  `json:"duration"`
	Distance  string  `json:"distance"`
	HiddenGem bool    `json:"isHiddenGem"`
	Tip       string  `json:"tip"`
}

type Restaurant struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Cuisine    string   `json:"cuisine"`
	Rating     float64  `json:"rating"`
	PriceLevel string   `json:"priceLevel"`
	WalkTime   string   `json:"walkTime"`
	Iconic     bool     `json:"isIconic"`
	MustTry    string   `json:"mustTry"`
	Dietary    []string `json:"dietary"`
}

// Catalog is the read-only source of hotels, places and restaurants offered
// by the trip wizard.
type Catalog interface {
	Hotels(destination string) []Hotel
	Places(destination string) []Place
	Restaurants(destination string) []Restaurant

	HotelByID(id int) (Hotel, bool)
	PlacesByIDs(ids []int) []Place
	RestaurantsByIDs(ids []int) []Restaurant
}

// StaticCatalog serves the same fixed inventory for every destination.
type StaticCatalog struct {
	hotels      []Hotel
	places      []Place
	restaurants []Restaurant
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		hotels:      seedHotels,
		places:      seedPlaces,
		restaurants: seedRestaurants,
	}
}

func (s *StaticCatalog) Hotels(string) []Hotel {
	return append([]Hotel(nil), s.hotels...)
}

func (s *StaticCatalog) Places(string) []Place {
	return append([]Place(nil), s.places...)
}

func (s *StaticCatalog) Restaurants(string) []Restaurant {
	return append([]Restaurant(nil), s.restaurants...)
}

func (s *StaticCatalog) HotelByID(id int) (Hotel, bool) {
	for _, h := range s.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

// PlacesByIDs returns places in the order the ids were given; unknown ids are
// skipped.
func (s *StaticCatalog) PlacesByIDs(ids []int) []Place {
	out := make([]Place, 0, len(ids))
	for _, id := range ids {
		for _, p := range s.places {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (s *StaticCatalog) RestaurantsByIDs(ids []int) []Restaurant {
	out := make([]Restaurant, 0, len(ids))
	for _, id := range ids {
		for _, r := range s.restaurants {
			if r.ID == id {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// SuitsDiet reports whether r serves the given dietary constraint.
func (r Restaurant) SuitsDiet(constraint string) bool {
	c := strings.ToLower(constraint)
	for _, d := range r.Dietary {
		d = strings.ToLower(d)
		if d == c || strings.HasPrefix(d, c+"-") {
			return true
		}
	}
	return false
}

// internal/domain/models/building.go
package models

// Building is a campus building with live occupancy and its study floors.
type Building struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     Point   `json:"location"`
	Occupancy    int     `json:"occupancy"`
	MaxOccupancy int     `json:"max_occupancy"`
	Floors       []Floor `json:"floors"`
	Image        string  `json:"image,omitempty"`
}

// Point is a position on the campus map.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Floor belongs to exactly one building and carries its study spaces in
// display order.
type Floor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	StudySpaces []StudySpace `json:"study_spaces"`
}

// StudySpace is a bookable or walk-in area on a floor.
//
// IsAvailable is stored state, not derived from occupancy vs capacity.
// A space can be at capacity while still flagged available; the flag
// only flips through explicit curation of the seed data.
type StudySpace struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Capacity         int      `json:"capacity"`
	CurrentOccupancy int      `json:"current_occupancy"`
	Amenities        []string `json:"amenities"`
	IsReservable     bool     `json:"is_reservable"`
	IsAvailable      bool     `json:"is_available"`
}

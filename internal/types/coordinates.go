package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrInvalidCoords    = errors.New("coordinates must be in the form \"lat,lon\"")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// String renders the pair as "lat,lon", the form the weather API accepts as q
func (c Coords) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// NormalizeCoords removes every whitespace rune, so "40.4168, -3.7038"
// becomes "40.4168,-3.7038".
func NormalizeCoords(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// ParseCoords parses a "lat,lon" string after normalizing it
func ParseCoords(raw string) (Coords, error) {
	lat, lon, ok := strings.Cut(NormalizeCoords(raw), ",")
	if !ok {
		return Coords{}, ErrInvalidCoords
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %v", ErrInvalidCoords, err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %v", ErrInvalidCoords, err)
	}

	if latitude < -90 || latitude > 90 {
		return Coords{}, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return Coords{}, ErrInvalidLongitude
	}

	return NewCoords(latitude, longitude), nil
}

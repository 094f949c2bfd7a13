package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

// ErrNoGeocodeMatch is returned by geocoders when a query resolves to nothing.
var ErrNoGeocodeMatch = errors.New("no geocode match")

const shelterSearchRadiusMeters = 20_000

// Shelter search status strings; kept as the user-visible contract.
const (
	StatusEnterLocation    = "Please enter location."
	StatusSearching        = "Searching... (Takes 2-3 seconds)"
	StatusLocationNotFound = "Location not found."
	StatusMapServerError   = "Error connecting to map server."
)

// ShelterService runs the free-text shelter search: geocode, then a nearby
// query. Every failure stage produces a distinct status string and leaves the
// previous results untouched.
type ShelterService struct {
	cache    *Cache
	geocoder ports.Geocoder
	finder   ports.ShelterFinder
}

func NewShelterService(cache *Cache, geocoder ports.Geocoder, finder ports.ShelterFinder) *ShelterService {
	return &ShelterService{cache: cache, geocoder: geocoder, finder: finder}
}

// Search resolves a location and loads nearby shelters into the cache.
// Empty or whitespace input is rejected locally; no request is issued.
func (s *ShelterService) Search(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		s.cache.ShelterStatus = StatusEnterLocation
		return domain.ErrEmptyInput
	}

	s.cache.ShelterLocation = location
	s.cache.ShelterStatus = StatusSearching

	at, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		if errors.Is(err, ErrNoGeocodeMatch) {
			s.cache.ShelterStatus = StatusLocationNotFound
		} else {
			s.cache.ShelterStatus = StatusMapServerError
		}
		return fmt.Errorf("geocode %q: %w", location, err)
	}

	shelters, err := s.finder.NearbyShelters(ctx, at, shelterSearchRadiusMeters)
	if err != nil {
		s.cache.ShelterStatus = StatusMapServerError
		return fmt.Errorf("nearby shelters: %w", err)
	}

	s.cache.Shelters = shelters
	s.cache.ShelterStatus = fmt.Sprintf("Found %d centers.", len(shelters))
	return nil
}

// Package osm resolves free-text locations and finds animal shelters using
// the public OpenStreetMap services: Nominatim for geocoding and Overpass
// for nearby amenity queries.
package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"

	maxResponseBytes = 1 << 22
	userAgent        = "instanimals-cli"
)

type Geocoder struct {
	baseURL string
	http    *http.Client
}

var _ ports.Geocoder = (*Geocoder)(nil)

func NewGeocoder(baseURL string, httpClient *http.Client) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Geocoder{baseURL: baseURL, http: httpClient}
}

// Geocode resolves a query to its best match. An empty result set maps to
// application.ErrNoGeocodeMatch so callers can tell "nowhere" from a
// transport failure.
func (g *Geocoder) Geocode(ctx context.Context, query string) (domain.GeoPoint, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	endpoint := g.baseURL + "/search?" + params.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("create geocode request: %w", err)
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := g.http.Do(request)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("perform geocode request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("read geocode response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("geocode status %d", response.StatusCode)
	}

	var matches []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(body, &matches); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(matches) == 0 {
		return domain.GeoPoint{}, application.ErrNoGeocodeMatch
	}

	lat, err := strconv.ParseFloat(matches[0].Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse latitude %q: %w", matches[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(matches[0].Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse longitude %q: %w", matches[0].Lon, err)
	}

	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}

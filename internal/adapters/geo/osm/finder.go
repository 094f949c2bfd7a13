package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

type ShelterFinder struct {
	endpoint string
	http     *http.Client
}

var _ ports.ShelterFinder = (*ShelterFinder)(nil)

func NewShelterFinder(endpoint string, httpClient *http.Client) *ShelterFinder {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ShelterFinder{endpoint: endpoint, http: httpClient}
}

type overpassElement struct {
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NearbyShelters queries Overpass for animal_shelter nodes and ways around
// a point. Ways carry their coordinates in "center", nodes inline.
func (f *ShelterFinder) NearbyShelters(ctx context.Context, at domain.GeoPoint, radiusMeters int) ([]domain.Shelter, error) {
	query := fmt.Sprintf(
		`[out:json][timeout:25];(node["amenity"="animal_shelter"](around:%d,%f,%f);way["amenity"="animal_shelter"](around:%d,%f,%f););out center tags;`,
		radiusMeters, at.Lat, at.Lon, radiusMeters, at.Lat, at.Lon)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("create overpass request: %w", err)
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := f.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform overpass request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read overpass response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass status %d", response.StatusCode)
	}

	var payload struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	shelters := make([]domain.Shelter, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		shelters = append(shelters, elementToShelter(el))
	}

	return shelters, nil
}

func elementToShelter(el overpassElement) domain.Shelter {
	tags := el.Tags

	lat, lon := el.Lat, el.Lon
	if el.Center != nil {
		lat, lon = el.Center.Lat, el.Center.Lon
	}

	return domain.Shelter{
		Name:    tagOr(tags, "name", "Shelter Center"),
		Address: assembleAddress(tags),
		Hours:   tagOr(tags, "opening_hours", "Contact for info"),
		Phone:   firstTag(tags, "N/A", "phone", "contact:phone"),
		Website: firstTag(tags, "", "website", "contact:website"),
		Lat:     lat,
		Lon:     lon,
	}
}

// assembleAddress builds "12 Main St, Springfield, IL, 62704" from addr:*
// tags, falling back to addr:full and then a fixed placeholder.
func assembleAddress(tags map[string]string) string {
	street := joinNonEmpty(" ", tags["addr:housenumber"], tags["addr:street"])
	cityStateZip := joinNonEmpty(", ", tags["addr:city"], tags["addr:state"], tags["addr:postcode"])

	full := joinNonEmpty(", ", street, cityStateZip)
	if full == "" {
		full = tags["addr:full"]
	}
	if full == "" {
		full = "Detailed address not listed on map"
	}

	return full
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func tagOr(tags map[string]string, key, fallback string) string {
	if v := tags[key]; v != "" {
		return v
	}
	return fallback
}

func firstTag(tags map[string]string, fallback string, keys ...string) string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return v
		}
	}
	return fallback
}

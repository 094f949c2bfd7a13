package domain

type GeoPoint struct {
	Lat float64
	Lon float64
}

// Shelter is a physical shelter location found via map search, not a shelter
// account posting to the feed.
type Shelter struct {
	Name    string
	Address string
	Hours   string
	Phone   string
	Website string
	Lat     float64
	Lon     float64
}

type AuthResult struct {
	Username string
	Handle   string
}

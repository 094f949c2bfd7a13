package domain

type Profile struct {
	DisplayName string
	Handle      string
	Bio         string
	AvatarSeed  string
}

// DefaultProfile is the profile every fresh install starts with, before any
// login or signup overwrites it.
func DefaultProfile() Profile {
	return Profile{
		DisplayName: "Felix Nature",
		Handle:      "Felix",
		Bio:         "Wildlife enthusiast. Discovering nature's wonders. 🌱",
		AvatarSeed:  "Felix",
	}
}

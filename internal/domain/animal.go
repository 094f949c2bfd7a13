package domain

import "strings"

type UrgencyTier string

const (
	UrgencyCritical UrgencyTier = "critical"
	UrgencyHigh     UrgencyTier = "high"
	UrgencyMedium   UrgencyTier = "medium"
	UrgencyLow      UrgencyTier = "low"
)

// Label returns the badge text for a tier, or "" when the tier is unknown.
func (u UrgencyTier) Label() string {
	switch u {
	case UrgencyCritical:
		return "Critical"
	case UrgencyHigh:
		return "High"
	case UrgencyMedium:
		return "Medium"
	case UrgencyLow:
		return "Low"
	default:
		return ""
	}
}

// Animal is sourced from the remote gateway. The client never mutates
// server-sourced fields; starred state and local comments are overlays keyed
// by ID in the domain cache.
type Animal struct {
	ID          string
	Name        string
	Breeds      string
	Age         string
	Size        string
	Gender      string
	Description string
	ShelterName string
	Location    string
	ImageURL    string
	Urgency     UrgencyTier
}

// SpeechText is the sentence handed to text-to-speech: the description when
// present, otherwise a sentence assembled from the animal's basic facts.
func (a Animal) SpeechText() string {
	if a.Description != "" {
		return a.Description
	}

	parts := []string{a.Name}
	if a.Breeds != "" {
		parts = append(parts, "a "+a.Breeds)
	}
	if a.Age != "" {
		parts = append(parts, a.Age)
	}
	if a.Gender != "" {
		parts = append(parts, strings.ToLower(a.Gender))
	}

	return strings.Join(parts, ", ") + ". Looking for a loving home!"
}

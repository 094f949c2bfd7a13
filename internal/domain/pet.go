package domain

import "strings"

// Pet is the richer adoption-pipeline record behind /api/pets, distinct from
// the feed Animal card.
type Pet struct {
	ID            string
	Name          string
	Species       string
	Breed         string
	Size          string
	AgeMonths     int
	Gender        string
	Energy        int
	MedicalNeeds  bool
	Status        string
	CoverImageURL string
	WhyUrgent     []string
}

// UrgentReason returns the first urgency reason, or "".
func (p Pet) UrgentReason() string {
	if len(p.WhyUrgent) > 0 {
		return p.WhyUrgent[0]
	}
	return ""
}

// GenderLabel normalizes a free-form gender value for display.
func GenderLabel(g string) string {
	switch strings.ToLower(g) {
	case "male":
		return "Male"
	case "female":
		return "Female"
	default:
		return "Unknown"
	}
}

// MatchCriteria are the adopter-side inputs to the server match score.
type MatchCriteria struct {
	HasYard         string
	HoursPerWeek    string
	ExperienceLevel string
	PrefersSize     string
}

type MatchResult struct {
	Score    int
	Reasons  []string
	Warnings []string
}

// AdoptionApplication mirrors the four-step apply payload.
type AdoptionApplication struct {
	Step1 ApplicantDetails
	Step2 Household
	Step3 Experience
	Step4 Preferences
}

type ApplicantDetails struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Zip       string
	Phone     string
	Email     string
}

type Household struct {
	HasYard       string
	OwnOrRent     string
	HouseholdSize string
	OtherPets     string
	LandlordOK    string
}

type Experience struct {
	ExperienceLevel string
	HoursPerWeek    string
	ExperienceNotes string
}

type Preferences struct {
	PreferredSpecies string
	PreferredSize    string
	CanMedicate      string
	CanTransport     string
	Notes            string
	Criteria         Criteria
}

type Criteria struct {
	Age18              bool
	CountyResident     bool
	CanTransportClinic bool
	CanSeparate        bool
	Signature          string
}

// FosterInterest is the standalone foster form payload.
type FosterInterest struct {
	Personal      ApplicantDetails
	FosterOptions FosterOptions
	Household     FosterHousehold
	Criteria      Criteria
}

type FosterOptions struct {
	ShortTerm bool
	LongTerm  bool
}

type FosterHousehold struct {
	Household
	Experience
	Preferences
}

// Validate enforces the original form's minimum: first name, last name, email.
func (a ApplicantDetails) Validate() error {
	if a.FirstName == "" || a.LastName == "" || a.Email == "" {
		return ValidationError{Field: "personal", Msg: "first name, last name, and email are required"}
	}
	return nil
}

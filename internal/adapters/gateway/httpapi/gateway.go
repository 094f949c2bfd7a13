package httpapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

type authResponse struct {
	Status   string `json:"status"`
	Username string `json:"username"`
	Handle   string `json:"handle"`
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.postJSON(ctx, "/api/login", payload, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	return domain.AuthResult{Username: resp.Username, Handle: resp.Handle}, nil
}

func (c *Client) Signup(ctx context.Context, email, password, username string) (domain.AuthResult, error) {
	payload := map[string]string{"email": email, "password": password, "username": username}

	var resp authResponse
	if err := c.postJSON(ctx, "/api/signup", payload, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("signup: %w", err)
	}

	return domain.AuthResult{Username: resp.Username, Handle: resp.Handle}, nil
}

type animalPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Breeds      string `json:"breeds"`
	Age         string `json:"age"`
	Size        string `json:"size"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	Shelter     string `json:"shelter"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Urgency     string `json:"urgency"`
}

func (c *Client) AdoptableAnimals(ctx context.Context) ([]domain.Animal, error) {
	var payload []animalPayload
	if err := c.getJSON(ctx, "/api/adoptable-animals", &payload); err != nil {
		return nil, fmt.Errorf("fetch adoptable animals: %w", err)
	}

	animals := make([]domain.Animal, 0, len(payload))
	for _, a := range payload {
		animals = append(animals, domain.Animal{
			ID:          a.ID,
			Name:        a.Name,
			Breeds:      a.Breeds,
			Age:         a.Age,
			Size:        a.Size,
			Gender:      a.Gender,
			Description: a.Description,
			ShelterName: a.Shelter,
			Location:    a.Location,
			ImageURL:    a.Image,
			Urgency:     domain.UrgencyTier(a.Urgency),
		})
	}

	return animals, nil
}

type petPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Species       string   `json:"species"`
	Breed         string   `json:"breed"`
	Size          string   `json:"size"`
	AgeMonths     int      `json:"ageMonths"`
	Gender        string   `json:"gender"`
	Energy        int      `json:"energy"`
	MedicalNeeds  bool     `json:"medicalNeeds"`
	Status        string   `json:"status"`
	CoverImageURL string   `json:"coverImageUrl"`
	WhyUrgent     []string `json:"whyUrgent"`
}

func (p petPayload) toDomain() domain.Pet {
	return domain.Pet{
		ID:            p.ID,
		Name:          p.Name,
		Species:       p.Species,
		Breed:         p.Breed,
		Size:          p.Size,
		AgeMonths:     p.AgeMonths,
		Gender:        p.Gender,
		Energy:        p.Energy,
		MedicalNeeds:  p.MedicalNeeds,
		Status:        p.Status,
		CoverImageURL: p.CoverImageURL,
		WhyUrgent:     p.WhyUrgent,
	}
}

type petListResponse struct {
	OK    bool         `json:"ok"`
	Items []petPayload `json:"items"`
}

func (c *Client) petList(ctx context.Context, path string, limit int) ([]domain.Pet, error) {
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var resp petListResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	pets := make([]domain.Pet, 0, len(resp.Items))
	for _, p := range resp.Items {
		pets = append(pets, p.toDomain())
	}

	return pets, nil
}

func (c *Client) UrgentPets(ctx context.Context, limit int) ([]domain.Pet, error) {
	pets, err := c.petList(ctx, "/api/pets/urgent", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch urgent pets: %w", err)
	}
	return pets, nil
}

func (c *Client) ExplorePets(ctx context.Context, limit int) ([]domain.Pet, error) {
	pets, err := c.petList(ctx, "/api/pets/explore", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch explore pets: %w", err)
	}
	return pets, nil
}

func (c *Client) Pet(ctx context.Context, id string) (domain.Pet, error) {
	var resp struct {
		OK    bool       `json:"ok"`
		Pet   petPayload `json:"pet"`
		Error string     `json:"error"`
	}
	if err := c.getJSON(ctx, "/api/pets/"+url.PathEscape(id), &resp); err != nil {
		return domain.Pet{}, fmt.Errorf("fetch pet %s: %w", id, err)
	}
	if !resp.OK {
		return domain.Pet{}, fmt.Errorf("fetch pet %s: %w", id, domain.ErrPetNotFound)
	}

	return resp.Pet.toDomain(), nil
}

func (c *Client) Match(ctx context.Context, petID string, criteria domain.MatchCriteria) (domain.MatchResult, error) {
	query := url.Values{}
	query.Set("hasYard", criteria.HasYard)
	query.Set("hoursPerWeek", criteria.HoursPerWeek)
	query.Set("experienceLevel", criteria.ExperienceLevel)
	query.Set("prefersSize", criteria.PrefersSize)

	var resp struct {
		OK       bool     `json:"ok"`
		Score    int      `json:"score"`
		Reasons  []string `json:"reasons"`
		Warnings []string `json:"warnings"`
		Error    string   `json:"error"`
	}
	path := "/api/pets/" + url.PathEscape(petID) + "/match?" + query.Encode()
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return domain.MatchResult{}, fmt.Errorf("fetch match for pet %s: %w", petID, err)
	}
	if !resp.OK {
		return domain.MatchResult{}, fmt.Errorf("fetch match for pet %s: %w", petID, domain.ErrPetNotFound)
	}

	return domain.MatchResult{Score: resp.Score, Reasons: resp.Reasons, Warnings: resp.Warnings}, nil
}

type applicantPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func applicantToPayload(a domain.ApplicantDetails) applicantPayload {
	return applicantPayload{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address:   a.Address,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Phone:     a.Phone,
		Email:     a.Email,
	}
}

type criteriaPayload struct {
	Age18              bool   `json:"age18"`
	CountyResident     bool   `json:"countyResident"`
	CanTransportClinic bool   `json:"canTransportClinic"`
	CanSeparate        bool   `json:"canSeparate"`
	Signature          string `json:"signature"`
}

func criteriaToPayload(c domain.Criteria) criteriaPayload {
	return criteriaPayload{
		Age18:              c.Age18,
		CountyResident:     c.CountyResident,
		CanTransportClinic: c.CanTransportClinic,
		CanSeparate:        c.CanSeparate,
		Signature:          c.Signature,
	}
}

func (c *Client) Apply(ctx context.Context, petID string, application domain.AdoptionApplication) (string, error) {
	payload := map[string]any{
		"step1": applicantToPayload(application.Step1),
		"step2": map[string]string{
			"hasYard":       application.Step2.HasYard,
			"ownOrRent":     application.Step2.OwnOrRent,
			"householdSize": application.Step2.HouseholdSize,
			"otherPets":     application.Step2.OtherPets,
			"landlordOk":    application.Step2.LandlordOK,
		},
		"step3": map[string]string{
			"experienceLevel": application.Step3.ExperienceLevel,
			"hoursPerWeek":    application.Step3.HoursPerWeek,
			"experienceNotes": application.Step3.ExperienceNotes,
		},
		"step4": map[string]any{
			"preferredSpecies": application.Step4.PreferredSpecies,
			"preferredSize":    application.Step4.PreferredSize,
			"canMedicate":      application.Step4.CanMedicate,
			"canTransport":     application.Step4.CanTransport,
			"notes":            application.Step4.Notes,
			"criteria":         criteriaToPayload(application.Step4.Criteria),
		},
	}

	var resp struct {
		OK    bool   `json:"ok"`
		AppID string `json:"appId"`
		Error string `json:"error"`
	}
	path := "/api/pets/" + url.PathEscape(petID) + "/apply"
	if err := c.postJSON(ctx, path, payload, &resp); err != nil {
		return "", fmt.Errorf("submit application for pet %s: %w", petID, err)
	}
	if !resp.OK {
		return "", &APIError{StatusCode: 200, Message: resp.Error}
	}

	return resp.AppID, nil
}

func (c *Client) FosterInterest(ctx context.Context, interest domain.FosterInterest) error {
	payload := map[string]any{
		"personal": applicantToPayload(interest.Personal),
		"fosterOptions": map[string]bool{
			"shortTerm": interest.FosterOptions.ShortTerm,
			"longTerm":  interest.FosterOptions.LongTerm,
		},
		"household": map[string]string{
			"hasYard":          interest.Household.HasYard,
			"ownOrRent":        interest.Household.OwnOrRent,
			"householdSize":    interest.Household.HouseholdSize,
			"otherPets":        interest.Household.OtherPets,
			"landlordOk":       interest.Household.LandlordOK,
			"experienceLevel":  interest.Household.ExperienceLevel,
			"hoursPerWeek":     interest.Household.HoursPerWeek,
			"experienceNotes":  interest.Household.ExperienceNotes,
			"preferredSpecies": interest.Household.PreferredSpecies,
			"preferredSize":    interest.Household.PreferredSize,
			"canMedicate":      interest.Household.CanMedicate,
			"canTransport":     interest.Household.CanTransport,
			"notes":            interest.Household.Notes,
		},
		"criteria": criteriaToPayload(interest.Criteria),
	}

	if err := c.postJSON(ctx, "/api/foster-interest", payload, nil); err != nil {
		return fmt.Errorf("submit foster interest: %w", err)
	}

	return nil
}

func (c *Client) AnimalSpeech(ctx context.Context, text, gender string) ([]byte, error) {
	payload := map[string]string{"text": text, "gender": gender}

	audio, err := c.postRaw(ctx, "/generate-animal-speech", payload)
	if err != nil {
		return nil, fmt.Errorf("generate animal speech: %w", err)
	}

	return audio, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

// genericAuthFailure is shown when the server gives no structured message.
const genericAuthFailure = "Something went wrong. Please try again."

type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// AuthPhase is the auth state machine position:
// anonymous → submitting → {authenticated, anonymous+error}.
type AuthPhase int

const (
	PhaseAnonymous AuthPhase = iota
	PhaseSubmitting
	PhaseAuthenticated
)

// APIMessenger is implemented by gateway errors that carry a server-provided
// user-facing message.
type APIMessenger interface {
	UserMessage() string
}

// AuthService runs the login/signup flow: local validation first, then the
// remote gateway, then durable persistence of the returned profile.
type AuthService struct {
	session *domain.Session
	store   ports.ProfileStore
	gateway ports.Gateway

	Phase     AuthPhase
	LastError string
}

func NewAuthService(session *domain.Session, store ports.ProfileStore, gateway ports.Gateway) *AuthService {
	return &AuthService{
		session: session,
		store:   store,
		gateway: gateway,
	}
}

// Authenticate validates locally, calls the gateway, and on success persists
// the profile and flips the session to logged in. Validation failures never
// reach the gateway. The returned error doubles as LastError for inline
// display.
func (s *AuthService) Authenticate(ctx context.Context, mode AuthMode, email, password, username string) error {
	email = strings.TrimSpace(email)

	if err := validateCredentials(email, password); err != nil {
		s.Phase = PhaseAnonymous
		s.LastError = err.Error()
		return err
	}

	s.Phase = PhaseSubmitting
	s.LastError = ""

	var (
		result domain.AuthResult
		err    error
	)
	if mode == ModeSignup {
		if username = strings.TrimSpace(username); username == "" {
			username = emailLocalPart(email)
		}
		result, err = s.gateway.Signup(ctx, email, password, username)
	} else {
		result, err = s.gateway.Login(ctx, email, password)
	}
	if err != nil {
		s.Phase = PhaseAnonymous
		s.LastError = authFailureMessage(err)
		return fmt.Errorf("%s: %w", mode, err)
	}

	handle := result.Handle
	if handle == "" {
		handle = result.Username
	}
	s.session.Profile = domain.Profile{
		DisplayName: result.Username,
		Handle:      handle,
		Bio:         s.session.Profile.Bio,
		AvatarSeed:  result.Username,
	}
	s.session.LoggedIn = true
	s.Phase = PhaseAuthenticated

	record := domain.SessionRecord{Token: email, Profile: s.session.Profile}
	if err := s.store.Save(ctx, record); err != nil {
		// Signed in for this run either way; persistence failure only costs
		// the next restart.
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// SaveProfileEdit overwrites name and bio, persisting the whole profile.
// A blank name is rejected without mutation.
func (s *AuthService) SaveProfileEdit(ctx context.Context, name, bio string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ValidationError{Field: "name", Msg: "Name cannot be empty."}
	}

	s.session.Profile.DisplayName = name
	s.session.Profile.Bio = bio

	record, err := s.store.Load(ctx)
	if err != nil {
		record = domain.SessionRecord{}
	}
	record.Profile = s.session.Profile
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("persist profile edit: %w", err)
	}

	return nil
}

// Restore hydrates the session from durable storage at startup.
func (s *AuthService) Restore(ctx context.Context) error {
	record, err := s.store.Load(ctx)
	if err != nil {
		s.session.Profile = domain.DefaultProfile()
		return fmt.Errorf("load stored session: %w", err)
	}

	s.session.LoggedIn = record.LoggedIn()
	s.session.Profile = record.Profile
	if s.session.LoggedIn {
		s.Phase = PhaseAuthenticated
	}

	return nil
}

func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return domain.ValidationError{Field: "email", Msg: "Invalid email address."}
	}
	if len(password) < 6 {
		return domain.ValidationError{Field: "password", Msg: "Password must be 6+ characters."}
	}
	return nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func authFailureMessage(err error) string {
	var msgErr APIMessenger
	if errors.As(err, &msgErr) && msgErr.UserMessage() != "" {
		return msgErr.UserMessage()
	}
	return genericAuthFailure
}

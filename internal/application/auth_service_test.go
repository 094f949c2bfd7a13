package application

import (
	"context"
	"errors"
	"testing"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *domain.Session, *fakeStore, *fakeGateway) {
	t.Helper()

	session := &domain.Session{Profile: domain.DefaultProfile()}
	store := &fakeStore{}
	gateway := &fakeGateway{}
	return NewAuthService(session, store, gateway), session, store, gateway
}

func TestAuthenticateRejectsMalformedEmailLocally(t *testing.T) {
	svc, session, _, gateway := newAuthFixture(t)

	err := svc.Authenticate(context.Background(), ModeLogin, "not-an-email", "abcdef", "")

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Zero(t, gateway.loginCalls, "gateway must not be contacted")
	assert.Zero(t, gateway.signupCalls)
	assert.False(t, session.LoggedIn)
	assert.Equal(t, PhaseAnonymous, svc.Phase)
	assert.Equal(t, "Invalid email address.", svc.LastError)
}

func TestAuthenticateRejectsShortPasswordLocally(t *testing.T) {
	svc, _, _, gateway := newAuthFixture(t)

	err := svc.Authenticate(context.Background(), ModeLogin, "felix@example.com", "12345", "")

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Zero(t, gateway.loginCalls)
}

func TestAuthenticateLoginSuccessPersistsProfile(t *testing.T) {
	svc, session, store, gateway := newAuthFixture(t)
	gateway.authResult = domain.AuthResult{Username: "felix", Handle: "felix_n"}

	err := svc.Authenticate(context.Background(), ModeLogin, "felix@example.com", "secret99", "")
	require.NoError(t, err)

	assert.True(t, session.LoggedIn)
	assert.Equal(t, PhaseAuthenticated, svc.Phase)
	assert.Equal(t, "felix", session.Profile.DisplayName)
	assert.Equal(t, "felix_n", session.Profile.Handle)
	assert.Equal(t, "felix", session.Profile.AvatarSeed)

	assert.Equal(t, "felix@example.com", store.record.Token)
	assert.Equal(t, session.Profile, store.record.Profile)
}

func TestAuthenticateHandleFallsBackToUsername(t *testing.T) {
	svc, session, _, gateway := newAuthFixture(t)
	gateway.authResult = domain.AuthResult{Username: "felix"}

	require.NoError(t, svc.Authenticate(context.Background(), ModeLogin, "felix@example.com", "secret99", ""))

	assert.Equal(t, "felix", session.Profile.Handle)
}

func TestAuthenticateSignupDefaultsUsernameToEmailLocalPart(t *testing.T) {
	svc, _, _, gateway := newAuthFixture(t)
	gateway.authResult = domain.AuthResult{Username: "felix"}

	require.NoError(t, svc.Authenticate(context.Background(), ModeSignup, "felix@example.com", "secret99", "  "))

	assert.Equal(t, 1, gateway.signupCalls)
	assert.Equal(t, "felix", gateway.lastSignupUsername)
}

func TestAuthenticateServerRejectionSurfacesMessage(t *testing.T) {
	svc, session, _, gateway := newAuthFixture(t)
	gateway.authErr = apiErr{msg: "Email already registered."}

	err := svc.Authenticate(context.Background(), ModeSignup, "felix@example.com", "secret99", "felix")

	require.Error(t, err)
	assert.Equal(t, "Email already registered.", svc.LastError)
	assert.Equal(t, PhaseAnonymous, svc.Phase)
	assert.False(t, session.LoggedIn)
}

func TestAuthenticateNetworkFailureUsesGenericMessage(t *testing.T) {
	svc, _, _, gateway := newAuthFixture(t)
	gateway.authErr = errors.New("dial tcp: connection refused")

	err := svc.Authenticate(context.Background(), ModeLogin, "felix@example.com", "secret99", "")

	require.Error(t, err)
	assert.Equal(t, genericAuthFailure, svc.LastError)
}

func TestSaveProfileEditRejectsBlankName(t *testing.T) {
	svc, session, store, _ := newAuthFixture(t)
	original := session.Profile

	err := svc.SaveProfileEdit(context.Background(), "  ", "new bio")

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, original, session.Profile)
	assert.Zero(t, store.saved)
}

func TestSaveProfileEditPersistsWholesale(t *testing.T) {
	svc, session, store, _ := newAuthFixture(t)
	store.record = domain.SessionRecord{Token: "felix@example.com", Profile: session.Profile}

	require.NoError(t, svc.SaveProfileEdit(context.Background(), "Felix N.", "Fostering since 2020"))

	assert.Equal(t, "Felix N.", store.record.Profile.DisplayName)
	assert.Equal(t, "Fostering since 2020", store.record.Profile.Bio)
	assert.Equal(t, "felix@example.com", store.record.Token, "token survives a profile edit")
}

func TestRestoreHydratesSessionFromStorage(t *testing.T) {
	svc, session, store, _ := newAuthFixture(t)
	stored := domain.Profile{DisplayName: "Felix N.", Handle: "felix_n", Bio: "Fostering since 2020", AvatarSeed: "felix"}
	store.record = domain.SessionRecord{Token: "felix@example.com", Profile: stored}

	require.NoError(t, svc.Restore(context.Background()))

	assert.True(t, session.LoggedIn)
	assert.Equal(t, stored, session.Profile)
	assert.Equal(t, PhaseAuthenticated, svc.Phase)
}

func TestRestoreFreshInstallStaysAnonymous(t *testing.T) {
	svc, session, store, _ := newAuthFixture(t)
	store.record = domain.SessionRecord{Profile: domain.DefaultProfile()}

	require.NoError(t, svc.Restore(context.Background()))

	assert.False(t, session.LoggedIn)
	assert.Equal(t, domain.DefaultProfile(), session.Profile)
	assert.Equal(t, PhaseAnonymous, svc.Phase)
}

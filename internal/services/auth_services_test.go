package services

import (
	"context"
	"errors"
	"testing"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthAPI struct {
	loginResult *shopapi.LoginResult
	loginErr    error
	registerMsg string
	registerErr error
	loginCalls  int
}

func (m *mockAuthAPI) Login(context.Context, string, string) (*shopapi.LoginResult, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResult, nil
}

func (m *mockAuthAPI) Register(context.Context, string, string, string) (string, error) {
	return m.registerMsg, m.registerErr
}

type mockSessions struct {
	created   *model.Session
	destroyed []string
}

func (m *mockSessions) Create(_ context.Context, token, userID, userName, userEmail string) (*model.Session, error) {
	m.created = &model.Session{
		ID:        "sess-1",
		Token:     token,
		UserID:    userID,
		UserName:  userName,
		UserEmail: userEmail,
	}
	return m.created, nil
}

func (m *mockSessions) Destroy(_ context.Context, id string) error {
	m.destroyed = append(m.destroyed, id)
	return nil
}

func TestLogin_Success(t *testing.T) {
	api := &mockAuthAPI{loginResult: &shopapi.LoginResult{
		UserID: "u1", Name: "Ana", Email: "ana@example.com", Token: "jwt-token",
	}}
	sessions := &mockSessions{}
	svc := NewAuthService(api, sessions)

	sess, err := svc.Login(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", sess.Token)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Ana", sess.UserName)
	assert.Equal(t, "ana@example.com", sess.UserEmail)
}

func TestLogin_SurfacesBackendErrorVerbatim(t *testing.T) {
	api := &mockAuthAPI{loginErr: &shopapi.APIError{Status: 401, Message: "invalid credentials"}}
	sessions := &mockSessions{}
	svc := NewAuthService(api, sessions)

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong1")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.Nil(t, sessions.created, "failed login must not touch the session store")
}

func TestLogin_GenericMessageWithoutPayload(t *testing.T) {
	api := &mockAuthAPI{loginErr: errors.New("connection refused")}
	svc := NewAuthService(api, &mockSessions{})

	_, err := svc.Login(context.Background(), "ana@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, "unable to sign in, please try again", err.Error())
}

func TestLogin_ValidationBeforeAnyRequest(t *testing.T) {
	api := &mockAuthAPI{}
	svc := NewAuthService(api, &mockSessions{})

	_, err := svc.Login(context.Background(), "not-an-email", "")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")
	assert.Zero(t, api.loginCalls, "invalid form must not issue a request")
}

func TestRegister_NoAutoLogin(t *testing.T) {
	api := &mockAuthAPI{registerMsg: "account created, check your inbox"}
	sessions := &mockSessions{}
	svc := NewAuthService(api, sessions)

	msg, err := svc.Register(context.Background(), "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "account created, check your inbox", msg)
	assert.Nil(t, sessions.created, "register must not establish a session")
}

func TestRegister_Validation(t *testing.T) {
	api := &mockAuthAPI{}
	svc := NewAuthService(api, &mockSessions{})

	_, err := svc.Register(context.Background(), "", "ana@example.com", "short")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "password")
}

func TestLogout_Idempotent(t *testing.T) {
	sessions := &mockSessions{}
	svc := NewAuthService(&mockAuthAPI{}, sessions)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Empty(t, sessions.destroyed)

	require.NoError(t, svc.Logout(context.Background(), "sess-1"))
	require.NoError(t, svc.Logout(context.Background(), "sess-1"))
	assert.Equal(t, []string{"sess-1", "sess-1"}, sessions.destroyed)
}

package services

import (
	"context"
	"errors"
	"regexp"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/model"
)

const (
	MinPasswordLen = 6

	genericLoginError    = "unable to sign in, please try again"
	genericRegisterError = "unable to create account, please try again"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// AuthAPI is the slice of the backend client the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*shopapi.LoginResult, error)
	Register(ctx context.Context, name, email, password string) (string, error)
}

type SessionManager interface {
	Create(ctx context.Context, token, userID, userName, userEmail string) (*model.Session, error)
	Destroy(ctx context.Context, id string) error
}

// AuthService delegates credentials to the backend and manages the local
// session store around the result. Duplicate in-flight submits are not
// deduplicated; the backend treats them independently.
type AuthService struct {
	API      AuthAPI
	Sessions SessionManager
}

func NewAuthService(api AuthAPI, sessions SessionManager) *AuthService {
	return &AuthService{API: api, Sessions: sessions}
}

func (s *AuthService) validateEmail(email string) string {
	if email == "" {
		return "email is required"
	}
	if !emailRegex.MatchString(email) {
		return "invalid email format"
	}
	return ""
}

// Login authenticates against the backend and persists the session. The
// returned error string is the backend's own message when it sent one; a
// failure leaves any prior session untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	errs := FieldErrors{}
	if msg := s.validateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if password == "" {
		errs["password"] = "password is required"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	res, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, errors.New(Displayable(err, genericLoginError))
	}
	return s.Sessions.Create(ctx, res.Token, res.UserID, res.Name, res.Email)
}

// Register creates the account and returns the backend's confirmation
// message for display. It deliberately does not sign the user in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	errs := FieldErrors{}
	if name == "" {
		errs["name"] = "name is required"
	}
	if msg := s.validateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if len(password) < MinPasswordLen {
		errs["password"] = "password must be at least 6 characters"
	}
	if len(errs) > 0 {
		return "", errs
	}

	message, err := s.API.Register(ctx, name, email, password)
	if err != nil {
		return "", errors.New(Displayable(err, genericRegisterError))
	}
	return message, nil
}

// Logout destroys the session. Safe to call with no active session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Sessions.Destroy(ctx, sessionID)
}

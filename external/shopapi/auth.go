package shopapi

import (
	"context"
	"net/http"
)

// LoginResult carries everything the session store persists after a
// successful sign-in.
type LoginResult struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

// userPayload tolerates both id field spellings the backend has used.
type userPayload struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (u userPayload) id() string {
	if u.ID != "" {
		return u.ID
	}
	return u.MongoID
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}
	err := c.do(ctx, "", http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		UserID: out.User.id(),
		Name:   out.User.Name,
		Email:  out.User.Email,
		Token:  out.Token,
	}, nil
}

// Register creates the account and returns the backend's confirmation
// message. It never establishes a session; the user logs in separately.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, "", http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Message == "" {
		out.Message = "account created, please sign in"
	}
	return out.Message, nil
}

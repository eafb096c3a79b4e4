package services

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. The store stays untouched
// here; the seed happens when the socket authenticates with this token.
func (c *Client) Login(ctx context.Context, email string, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, false, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, email string, username string, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{
		Email:    email,
		Username: username,
		Password: password,
	}, false, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

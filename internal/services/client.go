// Package services wraps the REST endpoints. Every successful response is
// fed into the same store actions the socket events dispatch, so a
// user-initiated mutation and a server-pushed one can never diverge in
// shape. Failed calls never reach the store; they surface to the caller as a
// *RequestError.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chatapp-client/internal/store"
)

// RequestError is the error shape every endpoint rejects with.
type RequestError struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Status  int    `json:"-"`
}

func (e *RequestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

type Client struct {
	baseUrl  string
	http     *http.Client
	store    *store.Context
	sugar    *zap.SugaredLogger
	validate *validator.Validate
	token    func() string
	deviceID string
}

// NewClient builds the service client. token is called per request so a
// renewed session token is picked up without rebuilding the client.
func NewClient(baseUrl string, token func() string, st *store.Context, sugar *zap.SugaredLogger) *Client {
	return &Client{
		baseUrl:  strings.TrimRight(baseUrl, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		store:    st,
		sugar:    sugar,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		token:    token,
		deviceID: uuid.NewString(),
	}
}

// do sends one JSON request and decodes the response into out (which may be
// nil). Request structs are validated before anything goes on the wire.
func (c *Client) do(ctx context.Context, method, path string, body any, useToken bool, out any) error {
	if body != nil {
		if err := c.validate.Struct(body); err != nil {
			return &RequestError{Message: err.Error(), Path: path}
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: err.Error(), Path: path}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return &RequestError{Message: err.Error(), Path: path}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("X-Device-ID", c.deviceID)
	if useToken {
		req.Header.Set("Authorization", c.token())
	}

	c.sugar.Debugw("request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error(), Path: path}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		requestError := RequestError{Status: resp.StatusCode, Path: path}
		if err := json.NewDecoder(resp.Body).Decode(&requestError); err != nil || requestError.Message == "" {
			requestError.Message = resp.Status
		}
		requestError.Path = path
		return &requestError
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{Message: err.Error(), Path: path, Status: resp.StatusCode}
		}
	}
	return nil
}

// TokenClaims is the session token payload. The client cannot verify the
// signature (it has no secret); it only reads the claims to know who it is
// and when the session expires.
type TokenClaims struct {
	UserID int64 `json:"userID"`
	jwt.RegisteredClaims
}

func ParseToken(token string) (TokenClaims, error) {
	var claims TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, err
	}
	return claims, nil
}

// TokenExpired reports whether the session token is past its expiry claim.
// Tokens without an expiry claim never expire client-side.
func TokenExpired(token string, now time.Time) bool {
	claims, err := ParseToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.UTC().After(claims.ExpiresAt.UTC())
}

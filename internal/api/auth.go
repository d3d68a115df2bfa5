package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"vitrine/internal/domain"
)

// TokenResponse is the payload of POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. Unlike every other call,
// the backend expects this one form-encoded.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var tok TokenResponse

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return tok, errors.Wrap(err, "build login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return tok, errors.Wrap(err, "chamada à API /auth/token")
	}
	defer resp.Body.Close()

	if err := decode(resp, &tok); err != nil {
		return tok, err
	}
	if tok.AccessToken == "" {
		return tok, &Error{Status: resp.StatusCode, Message: "resposta de login sem token de acesso"}
	}
	return tok, nil
}

// RegisterPayload carries the full registration form to POST /auth/users/.
type RegisterPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	CPF               string `json:"cpf"`
	Phone             string `json:"phone"`
	AddressStreet     string `json:"address_street"`
	AddressNumber     string `json:"address_number"`
	AddressComplement string `json:"address_complement,omitempty"`
	AddressZip        string `json:"address_zip"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (domain.User, error) {
	var u domain.User
	err := c.post(ctx, "/auth/users/", "", payload, &u)
	return u, err
}

func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	var u domain.User
	err := c.get(ctx, "/auth/users/me/", token, &u)
	return u, err
}

// ProfilePayload updates the editable profile fields via PUT /auth/users/me/.
type ProfilePayload struct {
	FullName          string `json:"full_name,omitempty"`
	Phone             string `json:"phone,omitempty"`
	AddressStreet     string `json:"address_street,omitempty"`
	AddressNumber     string `json:"address_number,omitempty"`
	AddressComplement string `json:"address_complement,omitempty"`
	AddressZip        string `json:"address_zip,omitempty"`
	AddressCity       string `json:"address_city,omitempty"`
	AddressState      string `json:"address_state,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token string, payload ProfilePayload) (domain.User, error) {
	var u domain.User
	err := c.put(ctx, "/auth/users/me/", token, payload, &u)
	return u, err
}

type PasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (c *Client) UpdatePassword(ctx context.Context, token string, payload PasswordPayload) error {
	return c.put(ctx, "/auth/users/me/password", token, payload, nil)
}

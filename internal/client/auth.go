package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Login exchanges credentials for a bearer token (POST /token,
// form-encoded) and installs it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := newFormRequest(ctx, c.baseURL+"/token", form)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("login: %w", decodeError(resp))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	c.token = tok.AccessToken
	return tok.AccessToken, nil
}

// Register creates a new account. Only success or failure is reported.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}
	if err := c.postJSON(ctx, "/register", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// VerifyToken asks the server whether the installed token is valid.
func (c *Client) VerifyToken(ctx context.Context) error {
	return c.getStatus(ctx, "/verify-token")
}

// Me fetches the current user, primarily as a token check.
func (c *Client) Me(ctx context.Context) error {
	return c.getStatus(ctx, "/users/me/")
}

// Claims are the token fields the local guard reads. Only the payload
// segment is decoded; no signature verification happens client-side.
type Claims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	Exp     int64  `json:"exp"`
}

// Expired reports whether the claims were expired at the given time.
func (cl *Claims) Expired(now time.Time) bool {
	return cl.Exp > 0 && now.Unix() >= cl.Exp
}

// DecodeClaims extracts the claims from a JWT-shaped token without
// verifying its signature.
func DecodeClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("decode claims: not a JWT")
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return &claims, nil
}

// Authorize applies the guard policy for an authenticated surface:
// verify with the server when reachable; when the server cannot be
// reached, trust the installed token if it decodes locally, is
// unexpired, and its role claim satisfies requiredRole (empty means any
// role). A definitive server rejection is returned as the APIError so
// callers can clear cached credentials.
func (c *Client) Authorize(ctx context.Context, requiredRole string) error {
	if c.token == "" {
		return fmt.Errorf("authorize: no token")
	}

	err := c.VerifyToken(ctx)
	if err == nil {
		return nil
	}
	if _, definitive := IsAPIError(err); definitive {
		return fmt.Errorf("authorize: %w", err)
	}

	// Server unreachable: fall back to the local decode.
	c.log.Warn("token verification unreachable, trusting local token", zap.Error(err))
	claims, decErr := DecodeClaims(c.token)
	if decErr != nil {
		return fmt.Errorf("authorize: %w", decErr)
	}
	if claims.Expired(time.Now()) {
		return fmt.Errorf("authorize: token expired")
	}
	if requiredRole != "" && claims.Role != requiredRole {
		return fmt.Errorf("authorize: role %q does not satisfy %q", claims.Role, requiredRole)
	}
	return nil
}

func newFormRequest(ctx context.Context, url string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func (c *Client) getStatus(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	return nil
}

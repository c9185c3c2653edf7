// Package iamapi implements the client for the remote IAM REST API.
//
// The API owns all users, roles, permissions, and the audit trail and is
// the authoritative enforcement point for every call. This client attaches
// the session's bearer token, decodes responses into explicit structs, and
// fails closed when a response lacks required fields.
package iamapi

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
	"github.com/hashicorp/go-retryablehttp"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/config"
)

const defaultRetryWaitMax = 5 * time.Second

// Client talks to the IAM backend. All methods are safe for concurrent use.
type Client struct {
	http     *http.Client
	baseURL  string
	validate *validator.Validate
}

// New creates a Client from the backend configuration.
// Transport errors are retried; HTTP-level rejections are not.
func New(cfg config.Backend) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = nil

	if retryClient.RetryWaitMax == 0 {
		retryClient.RetryWaitMax = defaultRetryWaitMax
	}

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		http:     retryClient.StandardClient(),
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		validate: validator.New(),
	}
}

// SignIn authenticates the credentials and returns the token plus account.
// The response is validated fail-closed: a 2xx body missing the token or
// identity fields yields an error, not a half-built session.
func (c *Client) SignIn(ctx context.Context, username, password string) (*SignInResponse, error) {
	var out SignInResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", "", signInRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}

	if err := c.validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &out, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", "", req, nil)
}

// Profile returns the caller's own directory record.
func (c *Client) Profile(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProfile updates the caller's email and phone number.
func (c *Client) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/profile", token, upd, nil)
}

// ChangePassword changes the caller's password after verifying the current one.
func (c *Client) ChangePassword(ctx context.Context, token, current, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/profile/change-password", token,
		passwordChangeRequest{CurrentPassword: current, NewPassword: newPassword}, nil)
}

// ListUsers returns all directory users. Admin only, enforced by the backend.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateUser updates a user's email, phone number, and enabled flag.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, upd UserUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), token, upd, nil)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil, nil)
}

// ListRoles returns all roles with their permission sets.
func (c *Client) ListRoles(ctx context.Context, token string) ([]Role, error) {
	var out []Role
	if err := c.do(ctx, http.MethodGet, "/roles", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateRole creates a role with the referenced permissions.
func (c *Client) CreateRole(ctx context.Context, token string, change RoleChange) error {
	return c.do(ctx, http.MethodPost, "/roles", token, change, nil)
}

// UpdateRole replaces a role's permission set.
func (c *Client) UpdateRole(ctx context.Context, token string, id int64, change RoleChange) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/roles/%d", id), token, change, nil)
}

// ListPermissions returns the full permission catalogue.
func (c *Client) ListPermissions(ctx context.Context, token string) ([]Permission, error) {
	var out []Permission
	if err := c.do(ctx, http.MethodGet, "/roles/permissions", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// AuditLog returns the audit trail, newest first per backend contract.
func (c *Client) AuditLog(ctx context.Context, token string) ([]AuditEntry, error) {
	var out []AuditEntry
	if err := c.do(ctx, http.MethodGet, "/audit", token, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// do performs one request/response cycle. A non-2xx status is decoded into
// *Error carrying the backend's message field when the body provides one.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{StatusCode: resp.StatusCode}

		var payload errorPayload
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Message = payload.Message
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

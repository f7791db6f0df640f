// Package authclient resolves caller credentials against the identity
// service.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

const requestTimeout = 3 * time.Second

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active  bool   `json:"active"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Client implements ports.Authorizer by introspecting bearer tokens
// against the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an authorizer for the given identity service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Resolve introspects the credential. An empty credential is the guest
// path and resolves to the anonymous actor without a network call; an
// inactive or unknown token fails so the caller gets a 401 instead of
// silently becoming a guest.
func (c *Client) Resolve(ctx context.Context, credential string) (ports.Actor, error) {
	if credential == "" {
		return ports.AnonymousActor(), nil
	}

	body, err := json.Marshal(introspectRequest{Token: credential})
	if err != nil {
		return ports.Actor{}, errs.NewDependencyFailureErrorWithCause("identity", err)
	}

	url := c.baseURL + "/api/v1/introspect"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ports.Actor{}, errs.NewDependencyFailureErrorWithCause("identity", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Actor{}, errs.NewDependencyFailureErrorWithCause("identity", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Actor{}, errs.NewDependencyFailureErrorWithCause(
			"identity", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload introspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.Actor{}, errs.NewDependencyFailureErrorWithCause("identity", err)
	}

	if !payload.Active {
		return ports.Actor{}, errs.NewPermissionDeniedError("authenticate")
	}

	userID, err := kernel.UUIDFromString(payload.UserID)
	if err != nil {
		return ports.Actor{}, errs.NewValueIsInvalidErrorWithCause("userID", err)
	}

	return ports.Actor{
		ID:      userID,
		Email:   payload.Email,
		IsAdmin: payload.IsAdmin,
	}, nil
}

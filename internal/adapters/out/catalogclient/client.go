// Package catalogclient talks to the restaurant catalog service, the
// source of truth for delivery fees and preparation times used when
// pricing an order.
package catalogclient

import (
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

// restaurantPayload mirrors the catalog service's restaurant resource.
type restaurantPayload struct {
	Name               string  `json:"name"`
	Image              string  `json:"image"`
	DeliveryFee        float64 `json:"delivery_fee"`
	MaxDeliveryMinutes int     `json:"max_delivery_minutes"`
}

// Client implements ports.Catalog over the catalog service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL, e.g.
// "http://catalog:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// RestaurantInfo fetches pricing parameters for one restaurant. An unknown
// restaurant maps to ObjectNotFoundError so checkout fails with a client
// error rather than a dependency failure.
func (c *Client) RestaurantInfo(
	ctx context.Context,
	restaurantID kernel.UUID,
) (ports.RestaurantInfo, error) {
	url := fmt.Sprintf("%s/api/v1/restaurants/%s", c.baseURL, restaurantID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.RestaurantInfo{}, errs.NewDependencyFailureErrorWithCause("catalog", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RestaurantInfo{}, errs.NewDependencyFailureErrorWithCause("catalog", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ports.RestaurantInfo{}, errs.NewObjectNotFoundError("restaurantID", restaurantID.String())
	default:
		return ports.RestaurantInfo{}, errs.NewDependencyFailureErrorWithCause(
			"catalog", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload restaurantPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.RestaurantInfo{}, errs.NewDependencyFailureErrorWithCause("catalog", err)
	}

	deliveryFee, err := kernel.NewMoneyFromFloat(payload.DeliveryFee)
	if err != nil {
		return ports.RestaurantInfo{}, errs.NewDependencyFailureErrorWithCause("catalog", err)
	}

	return ports.RestaurantInfo{
		Name:               payload.Name,
		Image:              payload.Image,
		DeliveryFee:        deliveryFee,
		MaxDeliveryMinutes: payload.MaxDeliveryMinutes,
	}, nil
}

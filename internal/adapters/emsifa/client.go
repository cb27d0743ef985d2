package emsifa

import (
	"context"
	"fmt"
	"time"

	"github.com/bkpsdm/simpeg-grpc/internal/core/wilayah"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type wilayahPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client looks up the Indonesian administrative hierarchy from the
// emsifa api-wilayah-indonesia static API. Responses are not cached;
// the reference data is owned upstream.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient creates a Client.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// Provinces lists every province.
func (c *Client) Provinces(ctx context.Context) ([]wilayah.Wilayah, error) {
	return c.fetch(ctx, "/provinces.json")
}

// Regencies lists the regencies and cities of a province.
func (c *Client) Regencies(ctx context.Context, provinceID string) ([]wilayah.Wilayah, error) {
	return c.fetch(ctx, fmt.Sprintf("/regencies/%s.json", provinceID))
}

// Districts lists the districts of a regency.
func (c *Client) Districts(ctx context.Context, regencyID string) ([]wilayah.Wilayah, error) {
	return c.fetch(ctx, fmt.Sprintf("/districts/%s.json", regencyID))
}

// Villages lists the villages of a district.
func (c *Client) Villages(ctx context.Context, districtID string) ([]wilayah.Wilayah, error) {
	return c.fetch(ctx, fmt.Sprintf("/villages/%s.json", districtID))
}

func (c *Client) fetch(ctx context.Context, path string) ([]wilayah.Wilayah, error) {
	var payload []wilayahPayload
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(path)
	if err != nil {
		c.logger.Error("wilayah API call failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", wilayah.ErrUpstream, err)
	}

	if resp.IsError() {
		c.logger.Error("wilayah API returned an error status",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: status %d", wilayah.ErrUpstream, resp.StatusCode())
	}

	entries := make([]wilayah.Wilayah, 0, len(payload))
	for _, p := range payload {
		entries = append(entries, wilayah.Wilayah{ID: p.ID, Nama: p.Name})
	}
	return entries, nil
}

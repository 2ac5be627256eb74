// Package okgateway wraps the upstream payment gateway's QRIS mutation API.
package okgateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/mutation"
)

const dateLayout = "2006-01-02 15:04:05"

type mutationDTO struct {
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	BrandName  string `json:"brand_name"`
	IssuerReff string `json:"issuer_reff"`
}

type mutationResponse struct {
	Status string        `json:"status"`
	Data   []mutationDTO `json:"data"`
}

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(baseURL),
	}
}

func (c *Client) Mutations(ctx context.Context, merchantID, apiKey string) ([]mutation.Entry, error) {
	var result mutationResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"merchant": merchantID,
			"key":      apiKey,
		}).
		SetResult(&result).
		Get("/api/mutasi/qris/{merchant}/{key}")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("gateway reported status %q", result.Status)
	}

	entries := make([]mutation.Entry, 0, len(result.Data))
	for _, dto := range result.Data {
		amount, err := strconv.ParseInt(dto.Amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("gateway returned non-numeric amount %q", dto.Amount)
		}
		// Unparseable dates sort last rather than failing the whole lookup.
		date, _ := time.Parse(dateLayout, dto.Date)
		entries = append(entries, mutation.Entry{
			Date:   date,
			Brand:  dto.BrandName,
			Amount: amount,
		})
	}
	return entries, nil
}

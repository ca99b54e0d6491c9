package checkbook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/pkg/clients"
)

type Client struct {
	url       string
	apiKey    string
	apiSecret string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:       cfg.CheckbookAddress,
		apiKey:    cfg.CheckbookAPIKey,
		apiSecret: cfg.CheckbookAPISecret,
		client:    client,
	}
}

type digitalCheckRequest struct {
	Recipient   string      `json:"recipient"`
	Name        string      `json:"name"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
}

// Payout sends a digital check to the recipient's email. Amount is in cents;
// the API takes decimal dollars.
func (c *Client) Payout(ctx context.Context, email, name string, amount int64) error {
	body := digitalCheckRequest{
		Recipient:   email,
		Name:        name,
		Amount:      json.Number(fmt.Sprintf("%d.%02d", amount/100, amount%100)),
		Description: "Receipt repayment",
	}
	headers := http.Header{}
	headers.Set("Authorization", c.apiKey+":"+c.apiSecret)

	statusCode, _, err := c.client.PostJSON(c.url+"/v3/check/digital", headers, body)
	if err != nil {
		return err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}
	return nil
}

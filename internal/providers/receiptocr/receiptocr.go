package receiptocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/pkg/clients"
)

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.ReceiptOCRAddress,
		client: client,
	}
}

type extractRequest struct {
	Image string `json:"image"`
}

// Extract runs OCR over a receipt photo. A nil receipt without an error
// means the image could not be read as a receipt.
func (c *Client) Extract(ctx context.Context, image []byte) (*domain.Receipt, error) {
	body := extractRequest{Image: base64.StdEncoding.EncodeToString(image)}
	statusCode, respBody, err := c.client.PostJSON(c.url+"/api/extract", nil, body)
	if err != nil {
		return nil, err
	}

	switch {
	case statusCode == http.StatusNoContent:
		return nil, nil
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return nil, nil
	case statusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(respBody, &receipt); err != nil {
		return nil, fmt.Errorf("failed to parse receipt: %w", err)
	}
	return &receipt, nil
}

package lithic

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	"github.com/splitcard/splitcard/pkg/clients"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

const (
	stateOpen   = "OPEN"
	statePaused = "PAUSED"
	stateClosed = "CLOSED"
)

type Client struct {
	url           string
	apiKey        string
	webhookSecret string
	client        clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:           cfg.LithicAddress,
		apiKey:        cfg.LithicAPIKey,
		webhookSecret: cfg.LithicWebhookSecret,
		client:        client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", c.apiKey)
	return h
}

type cardResponse struct {
	Token    string `json:"token"`
	Pan      string `json:"pan"`
	Cvv      string `json:"cvv"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
}

// CreateCard issues a virtual card with the given spend limit and returns
// its token.
func (c *Client) CreateCard(ctx context.Context, spendLimit int64, duration string) (string, error) {
	body := map[string]any{
		"type":                 "VIRTUAL",
		"spend_limit":          spendLimit,
		"spend_limit_duration": duration,
		"state":                statePaused,
	}
	statusCode, respBody, err := c.client.PostJSON(c.url+"/v1/cards", c.headers(), body)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var card cardResponse
	if err := json.Unmarshal(respBody, &card); err != nil {
		return "", fmt.Errorf("failed to parse card response: %w", err)
	}
	return card.Token, nil
}

// UpdateCardState opens or pauses a card depending on group payability.
func (c *Client) UpdateCardState(ctx context.Context, token string, open bool) error {
	state := statePaused
	if open {
		state = stateOpen
	}
	return c.patchState(ctx, token, state)
}

func (c *Client) CloseCard(ctx context.Context, token string) error {
	return c.patchState(ctx, token, stateClosed)
}

func (c *Client) patchState(ctx context.Context, token, state string) error {
	payload, err := json.Marshal(map[string]string{"state": state})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.url+"/v1/cards/"+token, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header = c.headers()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (c *Client) CardInfo(ctx context.Context, token string) (*domain.CardInfo, error) {
	statusCode, respBody, _, err := c.client.Get(c.url+"/v1/cards/"+token, c.headers())
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var card cardResponse
	if err := json.Unmarshal(respBody, &card); err != nil {
		return nil, fmt.Errorf("failed to parse card response: %w", err)
	}
	return &domain.CardInfo{
		PAN:      card.Pan,
		CVV:      card.Cvv,
		ExpMonth: card.ExpMonth,
		ExpYear:  card.ExpYear,
	}, nil
}

type transactionPayload struct {
	Token     string `json:"token"`
	CardToken string `json:"card_token"`
	Amount    int64  `json:"amount"`
	Merchant  struct {
		Descriptor string `json:"descriptor"`
	} `json:"merchant"`
}

// VerifyWebhook authenticates a card-network delivery and decodes the
// transaction it carries. The signature is an HMAC-SHA256 of the raw body,
// base64 encoded.
func (c *Client) VerifyWebhook(payload []byte, signature string) (dto.CardTransaction, error) {
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return dto.CardTransaction{}, ErrInvalidSignature
	}

	var txn transactionPayload
	if err := json.Unmarshal(payload, &txn); err != nil {
		return dto.CardTransaction{}, fmt.Errorf("failed to parse transaction payload: %w", err)
	}
	return dto.CardTransaction{
		CardToken:          txn.CardToken,
		Token:              txn.Token,
		Amount:             txn.Amount,
		MerchantDescriptor: txn.Merchant.Descriptor,
	}, nil
}

package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/dto"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// descriptorSuffixLimit is the processor's cap on statement descriptor
// suffixes.
const descriptorSuffixLimit = 22

type Client struct {
	api           *client.API
	webhookSecret string
}

func New(cfg *config.Config) *Client {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &Client{
		api:           api,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
		Name:   stripe.String(name),
	}
	customer, err := c.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (c *Client) CreateSetupIntent(ctx context.Context, customerRef string) (string, error) {
	params := &stripe.SetupIntentParams{
		Params:             stripe.Params{Context: ctx},
		Customer:           stripe.String(customerRef),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := c.api.SetupIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// Charge confirms an off-session payment against the customer's saved
// payment method. Amount is in cents.
func (c *Client) Charge(ctx context.Context, customerRef, paymentMethodRef string, amount int64, descriptor string, metadata map[string]string) error {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		Customer:      stripe.String(customerRef),
		PaymentMethod: stripe.String(paymentMethodRef),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	if descriptor != "" {
		params.StatementDescriptorSuffix = stripe.String(truncate(descriptor, descriptorSuffixLimit))
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	_, err := c.api.PaymentIntents.New(params)
	return err
}

// VerifyWebhook authenticates a payment-provider delivery and maps it onto
// the event union the payment service dispatches on.
func (c *Client) VerifyWebhook(payload []byte, signature string) (dto.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch event.Type {
	case "setup_intent.succeeded":
		var intent stripe.SetupIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("failed to parse setup intent: %w", err)
		}
		out := dto.SetupSucceeded{}
		if intent.Customer != nil {
			out.CustomerRef = intent.Customer.ID
		}
		if intent.PaymentMethod != nil {
			out.PaymentMethodRef = intent.PaymentMethod.ID
		}
		return out, nil

	case "payment_intent.succeeded":
		intent, err := parsePaymentIntent(event.Data.Raw)
		if err != nil {
			return nil, err
		}
		return dto.PaymentSucceeded{
			CustomerRef: customerRef(intent),
			Amount:      intent.Amount,
			Metadata:    intent.Metadata,
		}, nil

	case "payment_intent.payment_failed":
		intent, err := parsePaymentIntent(event.Data.Raw)
		if err != nil {
			return nil, err
		}
		return dto.PaymentFailed{
			CustomerRef: customerRef(intent),
			Amount:      intent.Amount,
			Metadata:    intent.Metadata,
		}, nil

	default:
		return dto.UnknownPaymentEvent{Type: string(event.Type)}, nil
	}
}

func parsePaymentIntent(raw json.RawMessage) (*stripe.PaymentIntent, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent: %w", err)
	}
	return &intent, nil
}

func customerRef(intent *stripe.PaymentIntent) string {
	if intent.Customer == nil {
		return ""
	}
	return intent.Customer.ID
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

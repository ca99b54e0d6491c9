package dto

// CardTransaction is a card-network webhook delivery after signature
// verification. Token identifies the underlying transaction across
// re-deliveries and amount revisions.
type CardTransaction struct {
	CardToken          string `json:"card_token"`
	Token              string `json:"token"`
	Amount             int64  `json:"amount"`
	MerchantDescriptor string `json:"merchant_descriptor"`
}

// PaymentEvent is the tagged union of payment-provider webhook events.
// Handlers dispatch on the concrete type instead of comparing type strings.
type PaymentEvent interface {
	paymentEvent()
}

type SetupSucceeded struct {
	CustomerRef      string
	PaymentMethodRef string
}

type PaymentSucceeded struct {
	CustomerRef string
	Amount      int64
	Metadata    map[string]string
}

type PaymentFailed struct {
	CustomerRef string
	Amount      int64
	Metadata    map[string]string
}

type UnknownPaymentEvent struct {
	Type string
}

func (SetupSucceeded) paymentEvent()      {}
func (PaymentSucceeded) paymentEvent()    {}
func (PaymentFailed) paymentEvent()       {}
func (UnknownPaymentEvent) paymentEvent() {}

package domain

import "time"

type User struct {
	ID                    int       `db:"id"`
	Email                 string    `db:"email"`
	Name                  string    `db:"name"`
	PasswordHash          string    `db:"password_hash"`
	StripeCustomerID      *string   `db:"stripe_customer_id"`
	StripePaymentMethodID *string   `db:"stripe_payment_method_id"`
	CreatedAt             time.Time `db:"created_at"`
}

// HasPaymentMethod reports whether the user can be charged.
func (u *User) HasPaymentMethod() bool {
	return u.StripePaymentMethodID != nil && *u.StripePaymentMethodID != ""
}

type ShareGroup struct {
	ID                 int       `db:"id"`
	Name               string    `db:"name"`
	Description        string    `db:"description"`
	CardToken          string    `db:"card_token"`
	SpendLimit         int64     `db:"spend_limit"`
	SpendLimitDuration string    `db:"spend_limit_duration"`
	CreatedAt          time.Time `db:"created_at"`
}

type ShareGroupMember struct {
	GroupID int    `db:"group_id"`
	UserID  int    `db:"user_id"`
	Email   string `db:"email"`
	Name    string `db:"name"`
	IsOwner bool   `db:"is_owner"`
	Weight  int    `db:"weight"`
}

// Share group event types. The event log is append-only: rows are never
// updated or deleted once written.
const (
	SpendEvent    string = "spend"
	PayEvent      string = "pay"
	PayErrorEvent string = "payError"
)

type ShareGroupEvent struct {
	ID        int       `db:"id"`
	GroupID   int       `db:"group_id"`
	UserID    *int      `db:"user_id"`
	Type      string    `db:"type"`
	Data      EventData `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

// EventData is the JSON payload of a ledger event. Spend events carry a
// merchant descriptor, pay and payError events only an amount.
type EventData struct {
	Amount   int64  `json:"amount"`
	Merchant string `json:"merchant,omitempty"`
}

type ShareGroupInvite struct {
	Code      string    `db:"code"`
	GroupID   int       `db:"group_id"`
	CreatedAt time.Time `db:"created_at"`
}

// LithicTransaction is the reconciliation cursor for a single card-network
// transaction. PaidShareBalance holds the per-member share cost already
// settled for the transaction, so a webhook re-delivery or amount revision
// yields a safe incremental delta.
type LithicTransaction struct {
	Token            string `db:"token"`
	GroupID          int    `db:"group_id"`
	PaidShareBalance int64  `db:"paid_share_balance"`
}

type GroupPayability struct {
	GroupID   int    `db:"group_id"`
	CardToken string `db:"card_token"`
	IsPayable bool   `db:"is_payable"`
}

type CardInfo struct {
	PAN      string `json:"pan"`
	CVV      string `json:"cvv"`
	ExpMonth string `json:"expMonth"`
	ExpYear  string `json:"expYear"`
}

type RepayGroup struct {
	ID         int       `db:"id"`
	OwnerID    int       `db:"owner_id"`
	InviteCode string    `db:"invite_code"`
	Name       string    `db:"name"`
	Date       string    `db:"date"`
	Total      int64     `db:"total"`
	Paid       bool      `db:"paid"`
	CreatedAt  time.Time `db:"created_at"`
}

type RepayGroupItem struct {
	ID           int    `db:"id"`
	RepayGroupID int    `db:"repay_group_id"`
	ClaimantID   *int   `db:"claimant_id"`
	Description  string `db:"description"`
	Price        int64  `db:"price"`
	Paid         bool   `db:"paid"`
}

type RepayGroupMember struct {
	RepayGroupID int    `db:"repay_group_id"`
	UserID       int    `db:"user_id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
}

// Receipt is the well-formed output of the OCR provider.
type Receipt struct {
	SupplierName string        `json:"supplierName"`
	Date         string        `json:"date"`
	Total        int64         `json:"total"`
	Items        []ReceiptItem `json:"items"`
}

type ReceiptItem struct {
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

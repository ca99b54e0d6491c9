package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" example:"ada@example.com"`
	Name     string `json:"name" example:"Ada"`
	Password string `json:"password" example:"s3cret"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"s3cret"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type UserResponseDTO struct {
	ID               int    `json:"id" example:"1"`
	Email            string `json:"email" example:"ada@example.com"`
	Name             string `json:"name" example:"Ada"`
	HasPaymentMethod bool   `json:"hasPaymentMethod" example:"true"`
}

type PaymentSetupResponseDTO struct {
	StripePublishableKey    string `json:"stripePublishableKey"`
	StripeSetupIntentSecret string `json:"stripeSetupIntentSecret"`
}

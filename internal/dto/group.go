package dto

import "time"

type CreateGroupRequestDTO struct {
	Name               string `json:"name" example:"Ski trip"`
	Description        string `json:"description" example:"Shared card for the cabin"`
	SpendLimit         int64  `json:"spendLimit" example:"50000"`
	SpendLimitDuration string `json:"spendLimitDuration" example:"MONTHLY"`
}

type CreateGroupResponseDTO struct {
	GroupID int `json:"groupId" example:"1"`
}

type GroupMemberDTO struct {
	UserID  int    `json:"userId" example:"1"`
	Email   string `json:"email" example:"ada@example.com"`
	Name    string `json:"name" example:"Ada"`
	IsOwner bool   `json:"isOwner" example:"true"`
	Weight  int    `json:"weight" example:"1"`
}

type GroupEventDTO struct {
	ID        int       `json:"id" example:"1"`
	UserID    *int      `json:"userId,omitempty"`
	Type      string    `json:"type" example:"spend"`
	Amount    int64     `json:"amount" example:"1299"`
	Merchant  string    `json:"merchant,omitempty" example:"COFFEE SHOP"`
	CreatedAt time.Time `json:"createdAt"`
}

type GroupViewDTO struct {
	ID                 int              `json:"id" example:"1"`
	Name               string           `json:"name" example:"Ski trip"`
	Description        string           `json:"description"`
	SpendLimit         int64            `json:"spendLimit" example:"50000"`
	SpendLimitDuration string           `json:"spendLimitDuration" example:"MONTHLY"`
	TotalSpent         int64            `json:"totalSpent" example:"4200"`
	Members            []GroupMemberDTO `json:"members"`
	Events             []GroupEventDTO  `json:"events"`
	Invites            []string         `json:"invites,omitempty"`
}

type UpdateWeightRequestDTO struct {
	Weight int `json:"weight" example:"2"`
}

type InviteResponseDTO struct {
	Code string `json:"code" example:"dGVzdGNvZGU"`
}

type JoinResponseDTO struct {
	GroupID int `json:"groupId" example:"1"`
}

type InvitePreviewDTO struct {
	GroupID     int    `json:"groupId" example:"1"`
	Name        string `json:"name" example:"Ski trip"`
	Description string `json:"description"`
}

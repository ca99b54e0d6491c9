package dto

type CreateRepayRequestDTO struct {
	Image []byte `json:"image"`
}

type CreateRepayResponseDTO struct {
	RepayID int `json:"repayId" example:"1"`
}

type RepayItemDTO struct {
	ID          int    `json:"id" example:"1"`
	Description string `json:"description" example:"Pad Thai"`
	Price       int64  `json:"price" example:"1099"`
	Owed        int64  `json:"owed" example:"1201"`
	Paid        bool   `json:"paid" example:"false"`
	ClaimantID  *int   `json:"claimantId,omitempty"`
}

type RepayMemberDTO struct {
	UserID int    `json:"userId" example:"1"`
	Email  string `json:"email" example:"ada@example.com"`
	Name   string `json:"name" example:"Ada"`
}

type RepayViewDTO struct {
	ID         int              `json:"id" example:"1"`
	OwnerID    int              `json:"ownerId" example:"1"`
	InviteCode string           `json:"inviteCode" example:"04217"`
	Name       string           `json:"name" example:"Thai Palace"`
	Date       string           `json:"date" example:"2024-06-01"`
	Total      int64            `json:"total" example:"2000"`
	Paid       bool             `json:"paid" example:"false"`
	Items      []RepayItemDTO   `json:"items"`
	Members    []RepayMemberDTO `json:"members"`
}

type ClaimRequestDTO struct {
	ItemIDs []int `json:"itemIds"`
}

type JoinRepayResponseDTO struct {
	RepayID int `json:"repayId" example:"1"`
}

package providers

import (
	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/providers/checkbook"
	"github.com/splitcard/splitcard/internal/providers/lithic"
	"github.com/splitcard/splitcard/internal/providers/receiptocr"
	"github.com/splitcard/splitcard/internal/providers/stripepay"
	"github.com/splitcard/splitcard/pkg/clients"
)

type Providers struct {
	Cards    *lithic.Client
	Payments *stripepay.Client
	Payouts  *checkbook.Client
	Scanner  *receiptocr.Client
}

func New(cfg *config.Config) *Providers {
	httpClient := clients.NewHTTPClient()
	return &Providers{
		Cards:    lithic.New(cfg, httpClient),
		Payments: stripepay.New(cfg),
		Payouts:  checkbook.New(cfg, httpClient),
		Scanner:  receiptocr.New(cfg, httpClient),
	}
}

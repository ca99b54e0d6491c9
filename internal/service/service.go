package service

import (
	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/handlers/auth"
	"github.com/splitcard/splitcard/internal/handlers/groups"
	"github.com/splitcard/splitcard/internal/handlers/hooks"
	"github.com/splitcard/splitcard/internal/handlers/repays"

	pkgauth "github.com/splitcard/splitcard/pkg/auth"

	"github.com/splitcard/splitcard/internal/providers"
	"github.com/splitcard/splitcard/internal/repo"
	authservice "github.com/splitcard/splitcard/internal/service/authservice"
	payservice "github.com/splitcard/splitcard/internal/service/payservice"
	repayservice "github.com/splitcard/splitcard/internal/service/repayservice"
	shareservice "github.com/splitcard/splitcard/internal/service/shareservice"
)

type Services struct {
	AuthService    auth.Service
	PaymentService auth.PaymentService
	GroupService   groups.Service
	RepayService   repays.Service

	ShareHooks      hooks.ShareService
	PaymentHooks    hooks.PaymentService
	CardVerifier    hooks.CardVerifier
	PaymentVerifier hooks.PaymentVerifier
}

func New(repo *repo.Repositories, p *providers.Providers, cfg *config.Config) *Services {
	shareService := shareservice.New(repo.GroupRepo, repo.LedgerRepo, repo.UserRepo, p.Cards, p.Payments)
	repayService := repayservice.New(repo.RepayRepo, repo.UserRepo, p.Payments, p.Payouts, p.Scanner)
	paymentService := payservice.New(repo.UserRepo, repo.LedgerRepo, shareService, p.Payments, cfg.StripePublishableKey)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		PaymentService:  paymentService,
		GroupService:    shareService,
		RepayService:    repayService,
		ShareHooks:      shareService,
		PaymentHooks:    paymentService,
		CardVerifier:    p.Cards,
		PaymentVerifier: p.Payments,
	}
}

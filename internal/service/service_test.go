package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/splitcard/splitcard/internal/config"
	"github.com/splitcard/splitcard/internal/pg"
	"github.com/splitcard/splitcard/internal/providers"
	"github.com/splitcard/splitcard/internal/repo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	cfg := &config.Config{
		StripeSecretKey:      "sk_test",
		StripePublishableKey: "pk_test",
	}
	provs := providers.New(cfg)

	services := New(repos, provs, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.GroupService)
	assert.NotNil(t, services.RepayService)
	assert.NotNil(t, services.ShareHooks)
	assert.NotNil(t, services.PaymentHooks)
	assert.NotNil(t, services.CardVerifier)
	assert.NotNil(t, services.PaymentVerifier)
}

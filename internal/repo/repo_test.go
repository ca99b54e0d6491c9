package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/splitcard/splitcard/internal/pg"
	grouprepo "github.com/splitcard/splitcard/internal/repo/group-repo"
	ledgerrepo "github.com/splitcard/splitcard/internal/repo/ledger-repo"
	repayrepo "github.com/splitcard/splitcard/internal/repo/repay-repo"
	userrepo "github.com/splitcard/splitcard/internal/repo/user-repo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.GroupRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.RepayRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &grouprepo.Repository{}, repo.GroupRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &repayrepo.Repository{}, repo.RepayRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

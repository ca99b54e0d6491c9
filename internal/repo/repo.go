package repo

import (
	"github.com/splitcard/splitcard/internal/pg"
	grouprepo "github.com/splitcard/splitcard/internal/repo/group-repo"
	ledgerrepo "github.com/splitcard/splitcard/internal/repo/ledger-repo"
	repayrepo "github.com/splitcard/splitcard/internal/repo/repay-repo"
	userrepo "github.com/splitcard/splitcard/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo   *userrepo.Repository
	GroupRepo  *grouprepo.Repository
	LedgerRepo *ledgerrepo.Repository
	RepayRepo  *repayrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:   userrepo.New(conn),
		GroupRepo:  grouprepo.New(conn, txManager),
		LedgerRepo: ledgerrepo.New(conn, txManager),
		RepayRepo:  repayrepo.New(conn, txManager),
	}
}

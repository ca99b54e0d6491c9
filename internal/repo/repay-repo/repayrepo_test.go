package repayrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/pg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)

	date := "2025-03-14"
	now := time.Now()

	t.Run("Creates group with items and owner membership", func(t *testing.T) {
		group := &domain.RepayGroup{OwnerID: 1, InviteCode: "48213", Name: "Thai Palace", Date: date, Total: 2000}
		items := []domain.ReceiptItem{
			{Description: "Pad Thai", Price: 1099},
			{Description: "Spring Rolls", Price: 599},
		}

		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectQuery(regexp.QuoteMeta(`
				INSERT INTO repay_groups (owner_id, invite_code, name, date, total)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, created_at
			`)).
				WithArgs(1, "48213", "Thai Palace", date, int64(2000)).
				WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
			mock.ExpectExec(regexp.QuoteMeta(`
					INSERT INTO repay_group_items (repay_group_id, description, price)
					VALUES ($1, $2, $3)
				`)).
				WithArgs(5, "Pad Thai", int64(1099)).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectExec(regexp.QuoteMeta(`
					INSERT INTO repay_group_items (repay_group_id, description, price)
					VALUES ($1, $2, $3)
				`)).
				WithArgs(5, "Spring Rolls", int64(599)).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			mock.ExpectExec(regexp.QuoteMeta(`
				INSERT INTO repay_group_members (repay_group_id, user_id)
				VALUES ($1, $2)
			`)).
				WithArgs(5, 1).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			return fn(ctx)
		})

		created, err := repo.Create(context.Background(), group, items)
		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Database error rolls back", func(t *testing.T) {
		group := &domain.RepayGroup{OwnerID: 1, InviteCode: "48213", Name: "Thai Palace", Date: date, Total: 2000}

		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			mock.ExpectQuery(regexp.QuoteMeta(`
				INSERT INTO repay_groups (owner_id, invite_code, name, date, total)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, created_at
			`)).
				WithArgs(1, "48213", "Thai Palace", date, int64(2000)).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		created, err := repo.Create(context.Background(), group, nil)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_FindByInviteCode(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := "SELECT id, owner_id, invite_code, name, date, total, paid, created_at FROM repay_groups WHERE invite_code = $1 AND NOT paid ORDER BY id DESC LIMIT 1"
	now := time.Now()

	t.Run("Resolves the latest unsettled group", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "owner_id", "invite_code", "name", "date", "total", "paid", "created_at"}).
			AddRow(5, 1, "48213", "Thai Palace", "2025-03-14", int64(2000), false, now)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("48213").WillReturnRows(rows)

		group, err := repo.FindByInviteCode(context.Background(), "48213")
		assert.NoError(t, err)
		assert.NotNil(t, group)
		assert.Equal(t, 5, group.ID)
		assert.Equal(t, "Thai Palace", group.Name)
	})

	t.Run("Unknown code returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("00000").WillReturnError(pgx.ErrNoRows)

		group, err := repo.FindByInviteCode(context.Background(), "00000")
		assert.NoError(t, err)
		assert.Nil(t, group)
	})
}

func TestRepository_ClaimItems(t *testing.T) {
	repo, mock, tx := NewMock(t)

	updateQuery := `
					UPDATE repay_group_items
					SET claimant_id = $1, paid = TRUE
					WHERE id = $2 AND repay_group_id = $3 AND claimant_id IS NULL AND NOT paid
				`

	tests := []struct {
		name       string
		itemIDs    []int
		mockSetup  func()
		expectErr  bool
		expectedOK bool
	}{
		{
			name:    "Claims every requested item",
			itemIDs: []int{1, 3},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
						WithArgs(2, 1, 5).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
						WithArgs(2, 3, 5).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectedOK: true,
		},
		{
			name:    "Concurrently claimed item rolls the batch back",
			itemIDs: []int{1, 3},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
						WithArgs(2, 1, 5).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
						WithArgs(2, 3, 5).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expectedOK: false,
		},
		{
			name:    "Database error",
			itemIDs: []int{1},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
						WithArgs(2, 1, 5).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			ok, err := repo.ClaimItems(context.Background(), 5, 2, tt.itemIDs)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOK, ok)
			}
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := "UPDATE repay_groups SET paid = TRUE WHERE id = $1 AND NOT paid"

	t.Run("Flips the paid flag once", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkPaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Already paid group is not flipped again", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkPaid(context.Background(), 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(5).
			WillReturnError(errors.New("database error"))

		ok, err := repo.MarkPaid(context.Background(), 5)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

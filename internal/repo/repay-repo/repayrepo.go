package repayrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/pg"
	"go.uber.org/zap"
)

// errItemUnavailable aborts the claim transaction when a concurrent claim
// won the race for one of the requested items.
var errItemUnavailable = errors.New("item unavailable")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create inserts the repay group with its items and the owner membership.
func (r *Repository) Create(ctx context.Context, group *domain.RepayGroup, items []domain.ReceiptItem) (*domain.RepayGroup, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO repay_groups (owner_id, invite_code, name, date, total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`
		err := r.db.QueryRow(ctx, query, group.OwnerID, group.InviteCode, group.Name, group.Date, group.Total).
			Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			zap.L().Error("can't save repay group", zap.Error(err))
			return err
		}

		for _, item := range items {
			_, err := r.db.Exec(ctx, `
				INSERT INTO repay_group_items (repay_group_id, description, price)
				VALUES ($1, $2, $3)
			`, group.ID, item.Description, item.Price)
			if err != nil {
				zap.L().Error("can't save repay item", zap.Error(err))
				return err
			}
		}

		_, err = r.db.Exec(ctx, `
			INSERT INTO repay_group_members (repay_group_id, user_id)
			VALUES ($1, $2)
		`, group.ID, group.OwnerID)
		if err != nil {
			zap.L().Error("can't save repay owner membership", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

const repayColumns = "id, owner_id, invite_code, name, date, total, paid, created_at"

func scanRepayGroup(row pgx.Row) (*domain.RepayGroup, error) {
	var group domain.RepayGroup
	err := row.Scan(&group.ID, &group.OwnerID, &group.InviteCode, &group.Name, &group.Date, &group.Total, &group.Paid, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan repay group", zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.RepayGroup, error) {
	return scanRepayGroup(r.db.QueryRow(ctx, "SELECT "+repayColumns+" FROM repay_groups WHERE id = $1", id))
}

// FindByInviteCode resolves the most recent unsettled group for a code;
// 5-digit codes are reused over time.
func (r *Repository) FindByInviteCode(ctx context.Context, code string) (*domain.RepayGroup, error) {
	query := "SELECT " + repayColumns + ` FROM repay_groups WHERE invite_code = $1 AND NOT paid ORDER BY id DESC LIMIT 1`
	return scanRepayGroup(r.db.QueryRow(ctx, query, code))
}

func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.RepayGroup, error) {
	query := `
		SELECT g.id, g.owner_id, g.invite_code, g.name, g.date, g.total, g.paid, g.created_at
		FROM repay_groups g
		JOIN repay_group_members m ON m.repay_group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get repay groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.RepayGroup
	for rows.Next() {
		var group domain.RepayGroup
		err := rows.Scan(&group.ID, &group.OwnerID, &group.InviteCode, &group.Name, &group.Date, &group.Total, &group.Paid, &group.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan repay group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (r *Repository) ListItems(ctx context.Context, repayGroupID int) ([]domain.RepayGroupItem, error) {
	query := `
		SELECT id, repay_group_id, claimant_id, description, price, paid
		FROM repay_group_items
		WHERE repay_group_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, repayGroupID)
	if err != nil {
		zap.L().Error("can't get repay items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.RepayGroupItem
	for rows.Next() {
		var item domain.RepayGroupItem
		err := rows.Scan(&item.ID, &item.RepayGroupID, &item.ClaimantID, &item.Description, &item.Price, &item.Paid)
		if err != nil {
			zap.L().Error("can't scan repay item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) ListMembers(ctx context.Context, repayGroupID int) ([]domain.RepayGroupMember, error) {
	query := `
		SELECT m.repay_group_id, m.user_id, u.email, u.name
		FROM repay_group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.repay_group_id = $1
		ORDER BY m.user_id ASC
	`
	rows, err := r.db.Query(ctx, query, repayGroupID)
	if err != nil {
		zap.L().Error("can't get repay members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.RepayGroupMember
	for rows.Next() {
		var member domain.RepayGroupMember
		err := rows.Scan(&member.RepayGroupID, &member.UserID, &member.Email, &member.Name)
		if err != nil {
			zap.L().Error("can't scan repay member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *Repository) AddMember(ctx context.Context, repayGroupID, userID int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO repay_group_members (repay_group_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, repayGroupID, userID)
	if err != nil {
		zap.L().Error("can't add repay member", zap.Error(err))
		return err
	}
	return nil
}

// ClaimItems marks every requested item claimed and paid in one
// transaction. Each update is guarded so a concurrently claimed item rolls
// the whole batch back; the claim is all-or-nothing.
func (r *Repository) ClaimItems(ctx context.Context, repayGroupID, claimantID int, itemIDs []int) (bool, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, itemID := range itemIDs {
			tag, err := r.db.Exec(ctx, `
				UPDATE repay_group_items
				SET claimant_id = $1, paid = TRUE
				WHERE id = $2 AND repay_group_id = $3 AND claimant_id IS NULL AND NOT paid
			`, claimantID, itemID, repayGroupID)
			if err != nil {
				zap.L().Error("can't claim repay item", zap.Error(err))
				return err
			}
			if tag.RowsAffected() != 1 {
				return errItemUnavailable
			}
		}
		return nil
	})
	if errors.Is(err, errItemUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkPaid flips the group's paid flag, succeeding only if it is currently
// unset. The compare-and-set prevents a double payout.
func (r *Repository) MarkPaid(ctx context.Context, repayGroupID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE repay_groups SET paid = TRUE WHERE id = $1 AND NOT paid", repayGroupID)
	if err != nil {
		zap.L().Error("can't mark repay group paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

package ledgerrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/pg"
	"go.uber.org/zap"
)

// foreignKeyViolation is the Postgres error code for broken references.
const foreignKeyViolation = "23503"

var ErrGroupNotFound = errors.New("group not found")

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

// AppendEvent writes a new ledger event. Events are never updated or
// deleted once written.
func (r *Repository) AppendEvent(ctx context.Context, event *domain.ShareGroupEvent) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO share_group_events (group_id, user_id, type, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query, event.GroupID, event.UserID, event.Type, data).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrGroupNotFound
		}
		zap.L().Error("can't append ledger event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListEvents(ctx context.Context, groupID int) ([]domain.ShareGroupEvent, error) {
	query := `
		SELECT id, group_id, user_id, type, data, created_at
		FROM share_group_events
		WHERE group_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get ledger events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.ShareGroupEvent
	for rows.Next() {
		var event domain.ShareGroupEvent
		var data []byte
		err := rows.Scan(&event.ID, &event.GroupID, &event.UserID, &event.Type, &data, &event.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger event row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(data, &event.Data); err != nil {
			zap.L().Error("can't decode ledger event data", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// TotalSpent folds the spend events on read; no cached aggregate exists.
func (r *Repository) TotalSpent(ctx context.Context, groupID int) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM((data->>'amount')::bigint), 0)
		FROM share_group_events
		WHERE group_id = $1 AND type = 'spend'
	`, groupID).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum spend events", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// UpsertTransaction read-modify-writes the per-transaction share balance
// under a row lock and returns the newly owed per-share delta. The stored
// balance is never lowered, so a revised-down or replayed amount yields a
// zero delta and no further action.
func (r *Repository) UpsertTransaction(ctx context.Context, token string, groupID int, shareCost int64) (delta int64, created bool, err error) {
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		var previous int64
		scanErr := r.db.QueryRow(ctx, `
			SELECT paid_share_balance
			FROM lithic_transactions
			WHERE token = $1
			FOR UPDATE
		`, token).Scan(&previous)

		if errors.Is(scanErr, pgx.ErrNoRows) {
			_, insErr := r.db.Exec(ctx, `
				INSERT INTO lithic_transactions (token, group_id, paid_share_balance)
				VALUES ($1, $2, $3)
			`, token, groupID, shareCost)
			if insErr != nil {
				zap.L().Error("can't insert lithic transaction", zap.Error(insErr))
				return insErr
			}
			delta = shareCost
			created = true
			return nil
		}
		if scanErr != nil {
			zap.L().Error("can't read lithic transaction", zap.Error(scanErr))
			return scanErr
		}

		if shareCost <= previous {
			return nil
		}

		_, updErr := r.db.Exec(ctx, `
			UPDATE lithic_transactions
			SET paid_share_balance = $1
			WHERE token = $2
		`, shareCost, token)
		if updErr != nil {
			zap.L().Error("can't update lithic transaction", zap.Error(updErr))
			return updErr
		}
		delta = shareCost - previous
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return delta, created, nil
}

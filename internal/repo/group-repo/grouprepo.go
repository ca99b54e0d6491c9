package grouprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

var ErrAlreadyMember = errors.New("user is already a member")

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

const groupColumns = "id, name, description, card_token, spend_limit, spend_limit_duration, created_at"

func scanGroup(row pgx.Row) (*domain.ShareGroup, error) {
	var group domain.ShareGroup
	err := row.Scan(&group.ID, &group.Name, &group.Description, &group.CardToken, &group.SpendLimit, &group.SpendLimitDuration, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan share group", zap.Error(err))
		return nil, err
	}
	return &group, nil
}

// Create inserts the group together with its owner membership (weight 1).
func (r *Repository) Create(ctx context.Context, group *domain.ShareGroup, ownerID int) (*domain.ShareGroup, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO share_groups (name, description, card_token, spend_limit, spend_limit_duration)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`
		err := r.db.QueryRow(ctx, query, group.Name, group.Description, group.CardToken, group.SpendLimit, group.SpendLimitDuration).
			Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			zap.L().Error("can't save share group", zap.Error(err))
			return err
		}

		_, err = r.db.Exec(ctx, `
			INSERT INTO share_group_members (group_id, user_id, is_owner, weight)
			VALUES ($1, $2, TRUE, 1)
		`, group.ID, ownerID)
		if err != nil {
			zap.L().Error("can't save group owner membership", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ShareGroup, error) {
	return scanGroup(r.db.QueryRow(ctx, "SELECT "+groupColumns+" FROM share_groups WHERE id = $1", id))
}

func (r *Repository) FindByCardToken(ctx context.Context, cardToken string) (*domain.ShareGroup, error) {
	return scanGroup(r.db.QueryRow(ctx, "SELECT "+groupColumns+" FROM share_groups WHERE card_token = $1", cardToken))
}

func (r *Repository) FindByInviteCode(ctx context.Context, code string) (*domain.ShareGroup, error) {
	query := `
		SELECT g.id, g.name, g.description, g.card_token, g.spend_limit, g.spend_limit_duration, g.created_at
		FROM share_groups g
		JOIN share_group_invites i ON i.group_id = g.id
		WHERE i.code = $1
	`
	return scanGroup(r.db.QueryRow(ctx, query, code))
}

func (r *Repository) Delete(ctx context.Context, groupID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM share_groups WHERE id = $1", groupID)
	if err != nil {
		zap.L().Error("can't delete share group", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.ShareGroup, error) {
	query := `
		SELECT g.id, g.name, g.description, g.card_token, g.spend_limit, g.spend_limit_duration, g.created_at
		FROM share_groups g
		JOIN share_group_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get share groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.ShareGroup
	for rows.Next() {
		var group domain.ShareGroup
		err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.CardToken, &group.SpendLimit, &group.SpendLimitDuration, &group.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan share group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (r *Repository) ListMembers(ctx context.Context, groupID int) ([]domain.ShareGroupMember, error) {
	query := `
		SELECT m.group_id, m.user_id, u.email, u.name, m.is_owner, m.weight
		FROM share_group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
		ORDER BY m.is_owner DESC, m.user_id ASC
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get group members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.ShareGroupMember
	for rows.Next() {
		var member domain.ShareGroupMember
		err := rows.Scan(&member.GroupID, &member.UserID, &member.Email, &member.Name, &member.IsOwner, &member.Weight)
		if err != nil {
			zap.L().Error("can't scan group member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *Repository) AddMember(ctx context.Context, groupID, userID int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO share_group_members (group_id, user_id, is_owner, weight)
		VALUES ($1, $2, FALSE, 1)
	`, groupID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyMember
		}
		zap.L().Error("can't add group member", zap.Error(err))
		return err
	}
	return nil
}

// DeleteMember removes a non-owner membership. The owner row is excluded in
// the predicate so ownership can never be removed.
func (r *Repository) DeleteMember(ctx context.Context, groupID, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM share_group_members
		WHERE group_id = $1 AND user_id = $2 AND NOT is_owner
	`, groupID, userID)
	if err != nil {
		zap.L().Error("can't delete group member", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpdateMemberWeight(ctx context.Context, groupID, userID, weight int) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE share_group_members
		SET weight = $1
		WHERE group_id = $2 AND user_id = $3
	`, weight, groupID, userID)
	if err != nil {
		zap.L().Error("can't update member weight", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateInvite(ctx context.Context, code string, groupID int) error {
	_, err := r.db.Exec(ctx, "INSERT INTO share_group_invites (code, group_id) VALUES ($1, $2)", code, groupID)
	if err != nil {
		zap.L().Error("can't create invite", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteInvite(ctx context.Context, code string, groupID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM share_group_invites WHERE code = $1 AND group_id = $2", code, groupID)
	if err != nil {
		zap.L().Error("can't delete invite", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListInvites(ctx context.Context, groupID int) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT code FROM share_group_invites WHERE group_id = $1 ORDER BY created_at ASC", groupID)
	if err != nil {
		zap.L().Error("can't get invites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			zap.L().Error("can't scan invite row", zap.Error(err))
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// PayabilityForUser reports, for every group the user belongs to, whether
// all members of that group have a payment method on file.
func (r *Repository) PayabilityForUser(ctx context.Context, userID int) ([]domain.GroupPayability, error) {
	query := `
		SELECT g.id, g.card_token, bool_and(u.stripe_payment_method_id IS NOT NULL) AS is_payable
		FROM share_groups g
		JOIN share_group_members m ON m.group_id = g.id
		JOIN users u ON u.id = m.user_id
		WHERE g.id IN (SELECT group_id FROM share_group_members WHERE user_id = $1)
		GROUP BY g.id, g.card_token
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get group payability", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.GroupPayability
	for rows.Next() {
		var p domain.GroupPayability
		if err := rows.Scan(&p.GroupID, &p.CardToken, &p.IsPayable); err != nil {
			zap.L().Error("can't scan payability row", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// IsPayable reports whether every member of the group can be charged.
func (r *Repository) IsPayable(ctx context.Context, groupID int) (bool, error) {
	var payable bool
	err := r.db.QueryRow(ctx, `
		SELECT bool_and(u.stripe_payment_method_id IS NOT NULL)
		FROM share_group_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.group_id = $1
	`, groupID).Scan(&payable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't get group payability", zap.Error(err))
		return false, err
	}
	return payable, nil
}

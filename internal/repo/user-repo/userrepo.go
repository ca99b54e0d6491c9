package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/pg"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

var ErrEmailExists = errors.New("email already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = "id, email, name, password_hash, stripe_customer_id, stripe_payment_method_id, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.StripeCustomerID, &user.StripePaymentMethodID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (repo *Repository) FindByStripeCustomerID(ctx context.Context, customerID string) (*domain.User, error) {
	return scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE stripe_customer_id = $1", customerID))
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateStripeCustomerID(ctx context.Context, userID int, customerID string) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET stripe_customer_id = $1 WHERE id = $2", customerID, userID)
	if err != nil {
		zap.L().Error("can't update stripe customer id", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStripePaymentMethodID sets or clears (nil) the payment-method ref.
func (repo *Repository) UpdateStripePaymentMethodID(ctx context.Context, userID int, paymentMethodID *string) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET stripe_payment_method_id = $1 WHERE id = $2", paymentMethodID, userID)
	if err != nil {
		zap.L().Error("can't update stripe payment method id", zap.Error(err))
		return err
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// Purchase settles one purchase attempt in a single transaction. Lock order
// is always listing row first, buyer row second; the top-up path only ever
// touches the buyer row, so the two paths cannot deadlock.
func (r *orderRepository) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = r.settle(ctx, tx, buyerID, gameAccountID)
		return err
	})
	if err != nil {
		return nil, translateSettlementError(err)
	}
	return order, nil
}

func (r *orderRepository) settle(ctx context.Context, tx pgx.Tx, buyerID, gameAccountID int64) (*model.Order, error) {
	const lockAccount = `SELECT ga.status, ga.current_price, gc.name, ga.description
                         FROM game_accounts ga
                         JOIN game_categories gc ON gc.id = ga.category_id
                         WHERE ga.id=$1
                         FOR UPDATE OF ga`
	var (
		status      model.AccountStatus
		price       decimal.Decimal
		gameName    string
		description string
	)
	err := tx.QueryRow(ctx, lockAccount, gameAccountID).Scan(&status, &price, &gameName, &description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("lock listing: %w", err)
	}
	if status != model.AccountStatusAvailable {
		return nil, domainErrors.ErrNotAvailable
	}

	const lockBuyer = `SELECT email, money FROM users WHERE id=$1 FOR UPDATE`
	var (
		buyerEmail string
		balance    decimal.Decimal
	)
	if err := tx.QueryRow(ctx, lockBuyer, buyerID).Scan(&buyerEmail, &balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("lock buyer: %w", err)
	}
	if balance.LessThan(price) {
		return nil, domainErrors.ErrInsufficientFunds
	}

	// The money >= $2 guard re-checks the balance at write time. Zero rows
	// here means the locked read above was somehow stale; bail out retryable.
	const debit = `UPDATE users SET money = money - $2, updated_at=NOW() WHERE id=$1 AND money >= $2`
	tag, err := tx.Exec(ctx, debit, buyerID, price)
	if err != nil {
		return nil, fmt.Errorf("debit buyer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrConflict
	}

	const markSold = `UPDATE game_accounts SET status='sold', updated_at=NOW() WHERE id=$1`
	if _, err := tx.Exec(ctx, markSold, gameAccountID); err != nil {
		return nil, fmt.Errorf("mark sold: %w", err)
	}

	order := &model.Order{
		UserID:        buyerID,
		GameAccountID: gameAccountID,
		PricePaid:     price,
		CategoryName:  gameName,
		Description:   description,
		BuyerEmail:    buyerEmail,
	}
	const insertOrder = `INSERT INTO orders (user_id, game_account_id, price_paid) VALUES ($1, $2, $3)
                         RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertOrder, buyerID, gameAccountID, price).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}
	return order, nil
}

// translateSettlementError leaves domain outcomes untouched and maps every
// other settlement fault onto the retryable conflict error. Connectivity
// loss, timeouts, and concurrency faults all leave the listing unsold, so
// the caller may always retry.
func translateSettlementError(err error) error {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound),
		errors.Is(err, domainErrors.ErrNotAvailable),
		errors.Is(err, domainErrors.ErrInsufficientFunds),
		errors.Is(err, domainErrors.ErrConflict):
		return err
	}
	return fmt.Errorf("%w: %v", domainErrors.ErrConflict, err)
}

const orderColumns = `o.id, o.user_id, o.game_account_id, o.price_paid, o.created_at, gc.name, ga.description, u.email`

const orderJoins = ` FROM orders o
              JOIN game_accounts ga ON ga.id = o.game_account_id
              JOIN game_categories gc ON gc.id = ga.category_id
              JOIN users u ON u.id = o.user_id`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.GameAccountID, &o.PricePaid, &o.CreatedAt, &o.CategoryName, &o.Description, &o.BuyerEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + orderJoins + ` WHERE o.id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	query := `SELECT ` + orderColumns + orderJoins + ` WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM orders o WHERE 1=1`
	args := []any{}

	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		cond := fmt.Sprintf(" AND o.user_id=$%d", len(args))
		query += cond
		countQuery += cond
	}
	if filter.GameAccountID > 0 {
		args = append(args, filter.GameAccountID)
		cond := fmt.Sprintf(" AND o.game_account_id=$%d", len(args))
		query += cond
		countQuery += cond
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY o.created_at DESC`
	query += paginate(&args, filter.Page, filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.GameAccountID, &o.PricePaid, &o.CreatedAt, &o.CategoryName, &o.Description, &o.BuyerEmail); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// RecentSince feeds the storefront banner with the latest sales.
func (r *orderRepository) RecentSince(ctx context.Context, since time.Time) ([]model.BannerEntry, error) {
	query := `SELECT o.created_at, gc.name, ga.description, u.email` + orderJoins + `
              WHERE o.created_at >= $1
              ORDER BY o.created_at DESC
              LIMIT 20`
	rows, err := r.storage.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BannerEntry
	for rows.Next() {
		var e model.BannerEntry
		if err := rows.Scan(&e.CreatedAt, &e.GameName, &e.Description, &e.BuyerEmail); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

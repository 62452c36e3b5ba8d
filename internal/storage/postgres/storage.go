package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on. Tests swap it
// for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type accountRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type balanceRepository struct {
	storage *Storage
}

type depositRepository struct {
	storage *Storage
}

type idempotencyRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

func (s *Storage) Deposits() repository.DepositRepository {
	return &depositRepository{storage: s}
}

// IdempotencyKeys returns the HTTP response cache used by the purchase route.
func (s *Storage) IdempotencyKeys() repository.IdempotencyRepository {
	return &idempotencyRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            money NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (money >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS game_categories (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            image_url TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS game_accounts (
            id SERIAL PRIMARY KEY,
            category_id BIGINT NOT NULL REFERENCES game_categories(id),
            status TEXT NOT NULL DEFAULT 'available',
            original_price NUMERIC(12,2) NOT NULL CHECK (original_price >= 0),
            current_price NUMERIC(12,2) NOT NULL CHECK (current_price >= 0),
            description TEXT NOT NULL DEFAULT '',
            main_image_url TEXT NOT NULL DEFAULT '',
            account_type TEXT NOT NULL DEFAULT 'Normal',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            game_account_id BIGINT UNIQUE NOT NULL REFERENCES game_accounts(id),
            price_paid NUMERIC(12,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS deposit_requests (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            description TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS idempotency_keys (
            key TEXT PRIMARY KEY,
            response_status INT NOT NULL,
            response_body BYTEA NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_category ON game_accounts(category_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_deposits_user ON deposit_requests(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)
                   RETURNING id, money, created_at, updated_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.Money, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, money, created_at, updated_at FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, money, created_at, updated_at FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Money, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Update rewrites the administrative fields of a user profile. The password
// hash stays untouched; UpdatePassword owns that column.
func (r *userRepository) Update(ctx context.Context, id int64, email string, role model.Role, money decimal.Decimal) (*model.User, error) {
	const query = `UPDATE users SET email=$2, role=$3, money=$4, updated_at=NOW() WHERE id=$1
                   RETURNING id, email, password_hash, role, money, created_at, updated_at`
	u, err := r.scanUser(r.storage.pool.QueryRow(ctx, query, id, email, role, money))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		// Orders and deposit requests reference the user; those rows stay.
		if isForeignKeyViolation(err) {
			return domainErrors.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, filter repository.UsersFilter) ([]model.User, int64, error) {
	query := `SELECT id, email, password_hash, role, money, created_at, updated_at FROM users WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM users WHERE 1=1`
	args := []any{}

	if filter.Role != "" {
		args = append(args, filter.Role)
		cond := fmt.Sprintf(" AND role=$%d", len(args))
		query += cond
		countQuery += cond
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		cond := fmt.Sprintf(" AND email ILIKE $%d", len(args))
		query += cond
		countQuery += cond
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY created_at DESC`
	query += paginate(&args, filter.Page, filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Money, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// paginate appends LIMIT/OFFSET placeholders to args and returns the clause.
func paginate(args *[]any, page, limit int) string {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	*args = append(*args, limit)
	clause := fmt.Sprintf(" LIMIT $%d", len(*args))
	*args = append(*args, (page-1)*limit)
	clause += fmt.Sprintf(" OFFSET $%d", len(*args))
	return clause
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name, imageURL string) (*model.GameCategory, error) {
	const query = `INSERT INTO game_categories (name, image_url) VALUES ($1, $2) RETURNING id`
	var c model.GameCategory
	if err := r.storage.pool.QueryRow(ctx, query, name, imageURL).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	c.ImageURL = imageURL
	return &c, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.GameCategory, error) {
	const query = `SELECT id, name, image_url FROM game_categories WHERE id=$1`
	var c model.GameCategory
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.GameCategory, error) {
	const query = `SELECT id, name, image_url FROM game_categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.GameCategory
	for rows.Next() {
		var c model.GameCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, category model.GameCategory) error {
	const query = `UPDATE game_categories SET name=$2, image_url=$3 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, category.ID, category.Name, category.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM game_categories WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- AccountRepository implementation ---

const accountColumns = `ga.id, ga.category_id, gc.name, ga.status, ga.original_price, ga.current_price,
       ga.description, ga.main_image_url, ga.account_type, ga.created_at, ga.updated_at`

func (r *accountRepository) Create(ctx context.Context, account model.GameAccount) (*model.GameAccount, error) {
	const query = `INSERT INTO game_accounts (category_id, status, original_price, current_price, description, main_image_url, account_type)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		account.CategoryID, account.Status, account.OriginalPrice, account.CurrentPrice,
		account.Description, account.MainImageURL, account.Type,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.GameAccount, error) {
	query := `SELECT ` + accountColumns + `
              FROM game_accounts ga
              JOIN game_categories gc ON gc.id = ga.category_id
              WHERE ga.id=$1`
	var a model.GameAccount
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CategoryID, &a.CategoryName, &a.Status, &a.OriginalPrice, &a.CurrentPrice,
		&a.Description, &a.MainImageURL, &a.Type, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) List(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error) {
	query := `SELECT ` + accountColumns + `
              FROM game_accounts ga
              JOIN game_categories gc ON gc.id = ga.category_id
              WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM game_accounts ga WHERE 1=1`
	args := []any{}

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		cond := fmt.Sprintf(" AND ga.category_id=$%d", len(args))
		query += cond
		countQuery += cond
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		cond := fmt.Sprintf(" AND ga.status=$%d", len(args))
		query += cond
		countQuery += cond
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		cond := fmt.Sprintf(" AND ga.account_type=$%d", len(args))
		query += cond
		countQuery += cond
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY ga.created_at DESC`
	query += paginate(&args, filter.Page, filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.GameAccount
	for rows.Next() {
		var a model.GameAccount
		if err := rows.Scan(
			&a.ID, &a.CategoryID, &a.CategoryName, &a.Status, &a.OriginalPrice, &a.CurrentPrice,
			&a.Description, &a.MainImageURL, &a.Type, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// Update never touches status transitions owned by the purchase path: a sold
// listing stays sold.
func (r *accountRepository) Update(ctx context.Context, account model.GameAccount) error {
	const query = `UPDATE game_accounts
                   SET category_id=$2, status=$3, original_price=$4, current_price=$5,
                       description=$6, main_image_url=$7, account_type=$8, updated_at=NOW()
                   WHERE id=$1 AND status <> 'sold'`
	tag, err := r.storage.pool.Exec(ctx, query,
		account.ID, account.CategoryID, account.Status, account.OriginalPrice, account.CurrentPrice,
		account.Description, account.MainImageURL, account.Type,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.soldOrMissing(ctx, account.ID)
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM game_accounts WHERE id=$1 AND status <> 'sold'`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.soldOrMissing(ctx, id)
	}
	return nil
}

func (r *accountRepository) soldOrMissing(ctx context.Context, id int64) error {
	const query = `SELECT status FROM game_accounts WHERE id=$1`
	var status model.AccountStatus
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrNotAvailable
}

// --- BalanceRepository implementation ---

func (r *balanceRepository) Get(ctx context.Context, userID int64) (decimal.Decimal, error) {
	const query = `SELECT money FROM users WHERE id=$1`
	var money decimal.Decimal
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&money)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domainErrors.ErrNotFound
		}
		return decimal.Zero, err
	}
	return money, nil
}

// Credit increases the balance with a single atomic statement. The top-up
// path shares the users row with the purchase path, so no read-then-write.
func (r *balanceRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	const query = `UPDATE users SET money = money + $2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- DepositRepository implementation ---

func (r *depositRepository) Create(ctx context.Context, userID int64, description, imageURL string) (*model.DepositRequest, error) {
	const query = `INSERT INTO deposit_requests (user_id, description, image_url) VALUES ($1, $2, $3)
                   RETURNING id, status, created_at`
	var d model.DepositRequest
	err := r.storage.pool.QueryRow(ctx, query, userID, description, imageURL).Scan(&d.ID, &d.Status, &d.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	d.UserID = userID
	d.Description = description
	d.ImageURL = imageURL
	return &d, nil
}

func (r *depositRepository) GetByID(ctx context.Context, id int64) (*model.DepositRequest, error) {
	const query = `SELECT d.id, d.user_id, u.email, d.description, d.image_url, d.status, d.created_at
                   FROM deposit_requests d
                   JOIN users u ON u.id = d.user_id
                   WHERE d.id=$1`
	var d model.DepositRequest
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.UserID, &d.UserEmail, &d.Description, &d.ImageURL, &d.Status, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *depositRepository) List(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error) {
	query := `SELECT d.id, d.user_id, u.email, d.description, d.image_url, d.status, d.created_at
              FROM deposit_requests d
              JOIN users u ON u.id = d.user_id
              WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM deposit_requests d WHERE 1=1`
	args := []any{}

	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		cond := fmt.Sprintf(" AND d.user_id=$%d", len(args))
		query += cond
		countQuery += cond
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		cond := fmt.Sprintf(" AND d.status=$%d", len(args))
		query += cond
		countQuery += cond
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Pending requests float to the top of the review queue.
	query += ` ORDER BY CASE WHEN d.status = 'pending' THEN 0 ELSE 1 END, d.created_at DESC`
	query += paginate(&args, filter.Page, filter.Limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.DepositRequest
	for rows.Next() {
		var d model.DepositRequest
		if err := rows.Scan(&d.ID, &d.UserID, &d.UserEmail, &d.Description, &d.ImageURL, &d.Status, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *depositRepository) UpdateStatus(ctx context.Context, id int64, status model.DepositStatus) error {
	const query = `UPDATE deposit_requests SET status=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *depositRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM deposit_requests WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- idempotency key cache ---

func (r *idempotencyRepository) Get(ctx context.Context, key string) (int, []byte, bool, error) {
	const query = `SELECT response_status, response_body FROM idempotency_keys WHERE key=$1`
	var status int
	var body []byte
	err := r.storage.pool.QueryRow(ctx, query, key).Scan(&status, &body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, false, nil
		}
		return 0, nil, false, err
	}
	return status, body, true, nil
}

func (r *idempotencyRepository) Save(ctx context.Context, key string, status int, body []byte) error {
	const query = `INSERT INTO idempotency_keys (key, response_status, response_body) VALUES ($1, $2, $3)
                   ON CONFLICT (key) DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, key, status, body)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

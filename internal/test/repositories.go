package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role, Money: decimal.Zero}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdatePassword replaces the stored hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// Update rewrites email, role and money of a stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, email string, role model.Role, money decimal.Decimal) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if other, exists := s.Users[email]; exists && other.ID != id {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.Users, user.Email)
	user.Email = email
	user.Role = role
	user.Money = money
	s.Users[email] = user
	return user, nil
}

// Delete removes a stored user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Users, user.Email)
	delete(s.ByID, id)
	return nil
}

// List returns all stored users ignoring pagination.
func (s *UserRepositoryStub) List(ctx context.Context, filter repository.UsersFilter) ([]model.User, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var result []model.User
	for _, u := range s.ByID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories map[int64]*model.GameCategory
	Next       int64
	Err        error
}

// NewCategoryRepositoryStub constructs stub repository.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.GameCategory), Next: 1}
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, name, imageURL string) (*model.GameCategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	category := &model.GameCategory{ID: s.Next, Name: name, ImageURL: imageURL}
	s.Next++
	s.Categories[category.ID] = category
	return category, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.GameCategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Categories[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.GameCategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.GameCategory
	for _, c := range s.Categories {
		result = append(result, *c)
	}
	return result, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, category model.GameCategory) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[category.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Categories[category.ID] = &category
	return nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

// AccountRepositoryStub stores listings in-memory for tests.
type AccountRepositoryStub struct {
	Accounts map[int64]*model.GameAccount
	Next     int64
	Err      error
}

// NewAccountRepositoryStub constructs stub repository.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{Accounts: make(map[int64]*model.GameAccount), Next: 1}
}

func (s *AccountRepositoryStub) Create(ctx context.Context, account model.GameAccount) (*model.GameAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	account.ID = s.Next
	s.Next++
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	s.Accounts[account.ID] = &account
	return &account, nil
}

func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.GameAccount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.Accounts[id]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *AccountRepositoryStub) List(ctx context.Context, filter repository.AccountsFilter) ([]model.GameAccount, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var result []model.GameAccount
	for _, a := range s.Accounts {
		if filter.CategoryID > 0 && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (s *AccountRepositoryStub) Update(ctx context.Context, account model.GameAccount) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.Accounts[account.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if existing.Status == model.AccountStatusSold {
		return domainErrors.ErrNotAvailable
	}
	account.UpdatedAt = time.Now()
	s.Accounts[account.ID] = &account
	return nil
}

func (s *AccountRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.Accounts[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if existing.Status == model.AccountStatusSold {
		return domainErrors.ErrNotAvailable
	}
	delete(s.Accounts, id)
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	PurchaseFn    func(context.Context, int64, int64) (*model.Order, error)
	GetByIDFn     func(context.Context, int64) (*model.Order, error)
	ListFn        func(context.Context, repository.OrdersFilter) ([]model.Order, int64, error)
	RecentSinceFn func(context.Context, time.Time) ([]model.BannerEntry, error)

	Purchases []PurchaseCall
	Orders    []model.Order
	Banner    []model.BannerEntry
}

// PurchaseCall records one settlement attempt.
type PurchaseCall struct {
	BuyerID       int64
	GameAccountID int64
}

// Purchase tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Purchase(ctx context.Context, buyerID, gameAccountID int64) (*model.Order, error) {
	s.Purchases = append(s.Purchases, PurchaseCall{BuyerID: buyerID, GameAccountID: gameAccountID})
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, buyerID, gameAccountID)
	}
	return &model.Order{ID: 1, UserID: buyerID, GameAccountID: gameAccountID, CreatedAt: time.Now()}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrdersFilter) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if filter.UserID > 0 && o.UserID != filter.UserID {
			continue
		}
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

// RecentSince returns preconfigured banner entries.
func (s *OrderRepositoryStub) RecentSince(ctx context.Context, since time.Time) ([]model.BannerEntry, error) {
	if s.RecentSinceFn != nil {
		return s.RecentSinceFn(ctx, since)
	}
	return s.Banner, nil
}

// BalanceRepositoryStub lets tests control balance data.
type BalanceRepositoryStub struct {
	GetFn    func(context.Context, int64) (decimal.Decimal, error)
	CreditFn func(context.Context, int64, decimal.Decimal) error

	Balances map[int64]decimal.Decimal
	Credits  []CreditCall
}

// CreditCall records one balance credit.
type CreditCall struct {
	UserID int64
	Amount decimal.Decimal
}

// NewBalanceRepositoryStub constructs stub with initialized balances.
func NewBalanceRepositoryStub() *BalanceRepositoryStub {
	return &BalanceRepositoryStub{Balances: make(map[int64]decimal.Decimal)}
}

// Get returns configured balance or not found.
func (s *BalanceRepositoryStub) Get(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	if balance, ok := s.Balances[userID]; ok {
		return balance, nil
	}
	return decimal.Zero, domainErrors.ErrNotFound
}

// Credit records invocation and adjusts the stored balance.
func (s *BalanceRepositoryStub) Credit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount)
	}
	s.Credits = append(s.Credits, CreditCall{UserID: userID, Amount: amount})
	if s.Balances == nil {
		s.Balances = make(map[int64]decimal.Decimal)
	}
	s.Balances[userID] = s.Balances[userID].Add(amount)
	return nil
}

// DepositRepositoryStub stores deposit requests in-memory for tests.
type DepositRepositoryStub struct {
	Deposits map[int64]*model.DepositRequest
	Next     int64
	Err      error
}

// NewDepositRepositoryStub constructs stub repository.
func NewDepositRepositoryStub() *DepositRepositoryStub {
	return &DepositRepositoryStub{Deposits: make(map[int64]*model.DepositRequest), Next: 1}
}

func (s *DepositRepositoryStub) Create(ctx context.Context, userID int64, description, imageURL string) (*model.DepositRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	deposit := &model.DepositRequest{
		ID:          s.Next,
		UserID:      userID,
		Description: description,
		ImageURL:    imageURL,
		Status:      model.DepositStatusPending,
		CreatedAt:   time.Now(),
	}
	s.Next++
	s.Deposits[deposit.ID] = deposit
	return deposit, nil
}

func (s *DepositRepositoryStub) GetByID(ctx context.Context, id int64) (*model.DepositRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if d, ok := s.Deposits[id]; ok {
		return d, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *DepositRepositoryStub) List(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var result []model.DepositRequest
	for _, d := range s.Deposits {
		if filter.UserID > 0 && d.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		result = append(result, *d)
	}
	return result, int64(len(result)), nil
}

func (s *DepositRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.DepositStatus) error {
	if s.Err != nil {
		return s.Err
	}
	d, ok := s.Deposits[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	d.Status = status
	return nil
}

func (s *DepositRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Deposits[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Deposits, id)
	return nil
}

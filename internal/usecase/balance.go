package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minhdn/gameshop/internal/adapter/imagestore"
	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	"github.com/minhdn/gameshop/internal/domain/repository"
)

// BalanceUseCase manages balances and the deposit request flow.
type BalanceUseCase struct {
	balances repository.BalanceRepository
	deposits repository.DepositRepository
	images   imagestore.Client
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(b repository.BalanceRepository, d repository.DepositRepository, images imagestore.Client) *BalanceUseCase {
	return &BalanceUseCase{balances: b, deposits: d, images: images}
}

// Balance returns the spendable balance of a user.
func (u *BalanceUseCase) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return u.balances.Get(ctx, userID)
}

// RequestDeposit uploads the transfer bill image and records a pending
// deposit request for administrators to review.
func (u *BalanceUseCase) RequestDeposit(ctx context.Context, userID int64, description, filename string, bill io.Reader) (*model.DepositRequest, error) {
	if bill == nil {
		return nil, domainErrors.ErrInvalidInput
	}

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	imageURL, err := u.images.Upload(ctx, objectName, bill)
	if err != nil {
		return nil, fmt.Errorf("upload bill: %w", err)
	}

	return u.deposits.Create(ctx, userID, description, imageURL)
}

// MyDeposits returns the user's deposit requests.
func (u *BalanceUseCase) MyDeposits(ctx context.Context, userID int64, page, limit int) ([]model.DepositRequest, int64, error) {
	return u.deposits.List(ctx, repository.DepositsFilter{UserID: userID, Page: page, Limit: limit})
}

// AdminDeposits returns the review queue for administrators.
func (u *BalanceUseCase) AdminDeposits(ctx context.Context, filter repository.DepositsFilter) ([]model.DepositRequest, int64, error) {
	return u.deposits.List(ctx, filter)
}

// ReviewDeposit moves a pending request to approved or rejected. Reviewing a
// request twice is a conflict: approval alone never credits money, so the
// separate AddMoney step stays auditable.
func (u *BalanceUseCase) ReviewDeposit(ctx context.Context, depositID int64, approve bool) (*model.DepositRequest, error) {
	deposit, err := u.deposits.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Status != model.DepositStatusPending {
		return nil, domainErrors.ErrConflict
	}

	status := model.DepositStatusRejected
	if approve {
		status = model.DepositStatusApproved
	}
	if err := u.deposits.UpdateStatus(ctx, depositID, status); err != nil {
		return nil, err
	}
	deposit.Status = status
	return deposit, nil
}

// DeleteDeposit removes a request and its uploaded bill image.
func (u *BalanceUseCase) DeleteDeposit(ctx context.Context, depositID int64) error {
	deposit, err := u.deposits.GetByID(ctx, depositID)
	if err != nil {
		return err
	}
	if err := u.deposits.Delete(ctx, depositID); err != nil {
		return err
	}
	if deposit.ImageURL != "" {
		// Best effort: the record is gone either way.
		_ = u.images.Delete(ctx, filepath.Base(deposit.ImageURL))
	}
	return nil
}

// AddMoney credits a user's balance. Admin-only; the amount must be positive.
func (u *BalanceUseCase) AddMoney(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainErrors.ErrInvalidAmount
	}
	if err := u.balances.Credit(ctx, userID, amount); err != nil {
		return decimal.Zero, err
	}
	return u.balances.Get(ctx, userID)
}

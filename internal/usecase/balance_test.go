package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/minhdn/gameshop/internal/domain/errors"
	"github.com/minhdn/gameshop/internal/domain/model"
	testhelpers "github.com/minhdn/gameshop/internal/test"
)

func newBalanceUseCase() (*BalanceUseCase, *testhelpers.BalanceRepositoryStub, *testhelpers.DepositRepositoryStub, *testhelpers.ImageStoreStub) {
	balances := testhelpers.NewBalanceRepositoryStub()
	deposits := testhelpers.NewDepositRepositoryStub()
	images := &testhelpers.ImageStoreStub{}
	return NewBalanceUseCase(balances, deposits, images), balances, deposits, images
}

func TestBalanceUseCaseBalance(t *testing.T) {
	uc, balances, _, _ := newBalanceUseCase()
	balances.Balances[1] = decimal.NewFromInt(75)

	money, err := uc.Balance(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !money.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("unexpected balance: %s", money)
	}
}

func TestBalanceUseCaseRequestDeposit(t *testing.T) {
	uc, _, deposits, images := newBalanceUseCase()
	ctx := context.Background()

	deposit, err := uc.RequestDeposit(ctx, 1, "bank transfer", "bill.PNG", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deposit.Status != model.DepositStatusPending {
		t.Fatalf("expected pending status, got %s", deposit.Status)
	}
	if len(images.Uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(images.Uploads))
	}
	if !strings.HasSuffix(images.Uploads[0], ".png") {
		t.Fatalf("expected lowercased extension in object name: %s", images.Uploads[0])
	}
	if deposit.ImageURL != "http://images/"+images.Uploads[0] {
		t.Fatalf("expected stored image url, got %s", deposit.ImageURL)
	}
	if len(deposits.Deposits) != 1 {
		t.Fatalf("expected stored deposit request")
	}
}

func TestBalanceUseCaseRequestDepositValidation(t *testing.T) {
	uc, _, _, images := newBalanceUseCase()

	if _, err := uc.RequestDeposit(context.Background(), 1, "x", "bill.png", nil); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input without bill, got %v", err)
	}
	if len(images.Uploads) != 0 {
		t.Fatal("expected no uploads")
	}
}

func TestBalanceUseCaseRequestDepositUploadFailure(t *testing.T) {
	uc, _, deposits, images := newBalanceUseCase()
	images.UploadFn = func(context.Context, string, io.Reader) (string, error) {
		return "", errors.New("boom")
	}

	_, err := uc.RequestDeposit(context.Background(), 1, "x", "bill.png", strings.NewReader("bytes"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(deposits.Deposits) != 0 {
		t.Fatal("failed upload must not record a request")
	}
}

func TestBalanceUseCaseReviewDeposit(t *testing.T) {
	uc, _, deposits, _ := newBalanceUseCase()
	ctx := context.Background()

	created, err := deposits.Create(ctx, 1, "bank transfer", "http://images/bill.png")
	if err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	reviewed, err := uc.ReviewDeposit(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reviewed.Status != model.DepositStatusApproved {
		t.Fatalf("expected approved, got %s", reviewed.Status)
	}

	// A second review of the same request is a conflict.
	if _, err := uc.ReviewDeposit(ctx, created.ID, false); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if _, err := uc.ReviewDeposit(ctx, 999, true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBalanceUseCaseDeleteDeposit(t *testing.T) {
	uc, _, deposits, images := newBalanceUseCase()
	ctx := context.Background()

	created, err := deposits.Create(ctx, 1, "bank transfer", "http://images/bill.png")
	if err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	if err := uc.DeleteDeposit(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deposits.Deposits) != 0 {
		t.Fatal("expected deposit removed")
	}
	if len(images.Deletes) != 1 || images.Deletes[0] != "bill.png" {
		t.Fatalf("expected bill image removed, got %v", images.Deletes)
	}

	if err := uc.DeleteDeposit(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBalanceUseCaseAddMoney(t *testing.T) {
	uc, balances, _, _ := newBalanceUseCase()
	ctx := context.Background()
	balances.Balances[1] = decimal.NewFromInt(10)

	cases := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)}
	for _, amount := range cases {
		if _, err := uc.AddMoney(ctx, 1, amount); !errors.Is(err, domainErrors.ErrInvalidAmount) {
			t.Fatalf("amount %s: expected invalid amount, got %v", amount, err)
		}
	}
	if len(balances.Credits) != 0 {
		t.Fatal("rejected amounts must not credit")
	}

	total, err := uc.AddMoney(ctx, 1, decimal.NewFromInt(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected new balance 50, got %s", total)
	}
}

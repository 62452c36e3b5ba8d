package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/minhdn/gameshop/internal/adapter/imagestore"
	"github.com/minhdn/gameshop/internal/app"
	"github.com/minhdn/gameshop/internal/config"
	"github.com/minhdn/gameshop/internal/domain/repository"
	"github.com/minhdn/gameshop/internal/storage/postgres"
	"github.com/minhdn/gameshop/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:            ":0",
		DatabaseURI:           "postgres://stub",
		ImageStoreAddress:     "http://localhost",
		AuthSecret:            "secret",
		BannerRefreshInterval: time.Millisecond,
		BannerWindow:          time.Hour,
		ShutdownTimeout:       time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.ShopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.CategoryRepository(test.NewCategoryRepositoryStub())),
			fx.Replace(repository.AccountRepository(test.NewAccountRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.BalanceRepository(test.NewBalanceRepositoryStub())),
			fx.Replace(repository.DepositRepository(test.NewDepositRepositoryStub())),
			fx.Replace(imagestore.Client(&test.ImageStoreStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected shop facade instance")
	}
}

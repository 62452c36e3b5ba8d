package di

import (
	"go.uber.org/fx"

	"github.com/minhdn/gameshop/internal/adapter/imagestore"
	"github.com/minhdn/gameshop/internal/app"
	"github.com/minhdn/gameshop/internal/config"
	"github.com/minhdn/gameshop/internal/logger"
	"github.com/minhdn/gameshop/internal/pkg/auth"
	"github.com/minhdn/gameshop/internal/server/http/handlers"
	"github.com/minhdn/gameshop/internal/server/http/middleware"
	"github.com/minhdn/gameshop/internal/server/http/router"
	"github.com/minhdn/gameshop/internal/storage/postgres"
	"github.com/minhdn/gameshop/internal/usecase"
	"github.com/minhdn/gameshop/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		imagestore.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		fx.Provide(func(r *worker.BannerRefresher) handlers.BannerCache { return r }),
		fx.Provide(func(s *postgres.Storage) middleware.ResponseCache { return s.IdempotencyKeys() }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

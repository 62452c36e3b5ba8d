package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// BannerFacade exposes the subset of application functionality required by the worker.
type BannerFacade interface {
	RecentOrders(ctx context.Context, window time.Duration) ([]model.BannerEntry, error)
}

// BannerRefresher keeps an in-memory snapshot of recent sales for the public
// storefront banner. It only reads the order journal; nothing it does can
// mutate listings, orders or balances.
type BannerRefresher struct {
	facade          BannerFacade
	refreshInterval time.Duration
	window          time.Duration
	logger          *slog.Logger

	mu      sync.RWMutex
	entries []model.BannerEntry

	runMu  sync.Mutex
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewBannerRefresher constructs the banner cache worker.
func NewBannerRefresher(facade BannerFacade, refreshInterval, window time.Duration, logger *slog.Logger) *BannerRefresher {
	if refreshInterval <= 0 {
		refreshInterval = 30 * time.Second
	}
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}
	return &BannerRefresher{
		facade:          facade,
		refreshInterval: refreshInterval,
		window:          window,
		logger:          logger,
	}
}

// Start launches background refreshing. The cache is warmed immediately so
// the first storefront request does not see an empty banner.
func (r *BannerRefresher) Start(ctx context.Context) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.refresh(runCtx)

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the refresh loop to finish.
func (r *BannerRefresher) Stop() {
	r.runMu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.runMu.Unlock()

	r.wg.Wait()
}

// Entries returns the current banner snapshot.
func (r *BannerRefresher) Entries() []model.BannerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.BannerEntry(nil), r.entries...)
}

func (r *BannerRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *BannerRefresher) refresh(ctx context.Context) {
	entries, err := r.facade.RecentOrders(ctx, r.window)
	if err != nil {
		// Keep serving the previous snapshot.
		r.logger.Error("banner refresh failed", slog.String("error", err.Error()))
		return
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()
}

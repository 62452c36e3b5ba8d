package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minhdn/gameshop/internal/domain/model"
	testhelpers "github.com/minhdn/gameshop/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewBannerRefresherDefaults(t *testing.T) {
	r := NewBannerRefresher(&testhelpers.BannerFacadeStub{}, 0, 0, testLogger())
	if r.refreshInterval <= 0 {
		t.Fatalf("expected positive refresh interval, got %s", r.refreshInterval)
	}
	if r.window <= 0 {
		t.Fatalf("expected positive window, got %s", r.window)
	}
}

func TestBannerRefresherWarmsOnStart(t *testing.T) {
	facade := &testhelpers.BannerFacadeStub{
		Entries: []model.BannerEntry{{GameName: "Valorant", BuyerEmail: "cu****er@mail.com"}},
	}
	r := NewBannerRefresher(facade, time.Hour, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	entries := r.Entries()
	if len(entries) != 1 || entries[0].GameName != "Valorant" {
		t.Fatalf("expected warmed cache, got %+v", entries)
	}
}

func TestBannerRefresherRefreshesOnTick(t *testing.T) {
	facade := &testhelpers.BannerFacadeStub{}
	r := NewBannerRefresher(facade, 10*time.Millisecond, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	facade.SetEntries([]model.BannerEntry{{GameName: "WoW"}})

	deadline := time.After(time.Second)
	for {
		if entries := r.Entries(); len(entries) == 1 && entries[0].GameName == "WoW" {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for banner refresh")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestBannerRefresherKeepsSnapshotOnError(t *testing.T) {
	snapshot := []model.BannerEntry{{GameName: "Valorant"}}
	var failing atomic.Bool
	facade := &testhelpers.BannerFacadeStub{}
	facade.RecentFn = func(context.Context, time.Duration) ([]model.BannerEntry, error) {
		if failing.Load() {
			return nil, errors.New("db down")
		}
		return snapshot, nil
	}

	r := NewBannerRefresher(facade, 10*time.Millisecond, time.Hour, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	if len(r.Entries()) != 1 {
		t.Fatal("expected warmed cache")
	}

	failing.Store(true)
	baseline := facade.CallCount()
	deadline := time.After(time.Second)
	for facade.CallCount() <= baseline {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for failing refresh")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if entries := r.Entries(); len(entries) != 1 || entries[0].GameName != "Valorant" {
		t.Fatalf("expected stale snapshot retained, got %+v", entries)
	}
}

func TestBannerRefresherStopTwice(t *testing.T) {
	r := NewBannerRefresher(&testhelpers.BannerFacadeStub{}, time.Hour, time.Hour, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	r.Stop()
	r.Stop()
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalog"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	triggerLoad = "load"
	triggerTick = "tick"
)

type displayUsecase struct {
	log      *zap.SugaredLogger
	client   catalog.Client
	dirty    *DirtyFlag
	interval time.Duration

	// refreshMu serialises fetch-and-commit so an older list never replaces a
	// newer one. It is taken before mu.
	refreshMu sync.Mutex

	// mu guards products and status. The refresh loop holds it for the whole
	// fetch-commit-clear sequence of a dirty tick.
	mu       sync.RWMutex
	products []models.Product
	status   models.LoadStatus

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	subsMu sync.Mutex
	subs   map[chan models.DisplaySnapshot]struct{}
}

func NewDisplayUsecase(conf *config.Config, client catalog.Client, dirty *DirtyFlag) DisplayUsecase {
	return &displayUsecase{
		log:      logger.MustNamed("display"),
		client:   client,
		dirty:    dirty,
		interval: conf.Display.PollInterval,
		products: []models.Product{},
		status:   models.LoadStatusIdle,
		subs:     make(map[chan models.DisplaySnapshot]struct{}),
	}
}

// StartDisplay loads the list when the application starts and stops the
// refresh loop on shutdown.
func StartDisplay(lc fx.Lifecycle, display DisplayUsecase) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				_ = display.LoadProducts(ctx)
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			display.Stop()
			return nil
		},
	})
}

// LoadProducts fetches the list once and starts the refresh loop, unless ctx
// has been cancelled by then.
func (d *displayUsecase) LoadProducts(ctx context.Context) error {
	err := d.Reload(ctx)
	if !d.startUnlessDone(ctx) {
		return errors.Join(err, ctx.Err())
	}
	return err
}

func (d *displayUsecase) Reload(ctx context.Context) error {
	d.refreshMu.Lock()
	defer d.refreshMu.Unlock()

	d.mu.Lock()
	d.status = models.LoadStatusLoading
	d.mu.Unlock()

	products, err := d.fetch(ctx)
	observeRefresh(triggerLoad, err)

	d.mu.Lock()
	if err != nil {
		d.status = models.LoadStatusLoadFailed
		d.mu.Unlock()
		d.log.Warnw("load products failed, keeping current list", "error", err)
		return err
	}
	d.commitLocked(products)
	snap := d.snapshotLocked()
	d.mu.Unlock()

	d.log.Infow("products loaded", "total", snap.Total)
	d.publish(snap)
	return nil
}

func (d *displayUsecase) Tick(ctx context.Context) bool {
	if !d.dirty.IsSet() {
		return false
	}

	d.refreshMu.Lock()
	defer d.refreshMu.Unlock()

	d.mu.Lock()
	products, err := d.fetch(ctx)
	observeRefresh(triggerTick, err)
	if err == nil {
		d.commitLocked(products)
	}
	d.dirty.Clear()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	if err != nil {
		d.log.Warnw("refresh products failed, keeping current list", "error", err)
		return true
	}
	d.log.Debugw("products refreshed", "total", snap.Total)
	d.publish(snap)
	return true
}

func (d *displayUsecase) Start() bool {
	d.loopMu.Lock()
	defer d.loopMu.Unlock()
	return d.startLocked()
}

// startUnlessDone checks ctx under loopMu so a Stop that follows the
// cancellation always sees the loop this call may start.
func (d *displayUsecase) startUnlessDone(ctx context.Context) bool {
	d.loopMu.Lock()
	defer d.loopMu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	d.startLocked()
	return true
}

func (d *displayUsecase) startLocked() bool {
	if d.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.refreshLoop(ctx, d.done)

	d.log.Infow("refresh loop started", "interval", d.interval.String())
	return true
}

func (d *displayUsecase) Stop() {
	d.loopMu.Lock()
	defer d.loopMu.Unlock()
	if d.cancel == nil {
		return
	}

	d.cancel()
	<-d.done
	d.cancel = nil
	d.done = nil
	d.log.Infow("refresh loop stopped")
}

func (d *displayUsecase) Running() bool {
	d.loopMu.Lock()
	defer d.loopMu.Unlock()
	return d.cancel != nil
}

func (d *displayUsecase) refreshLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

func (d *displayUsecase) Total() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.products)
}

func (d *displayUsecase) Products() []models.Product {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Product(nil), d.products...)
}

func (d *displayUsecase) Snapshot() models.DisplaySnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshotLocked()
}

func (d *displayUsecase) Subscribe() (<-chan models.DisplaySnapshot, func()) {
	ch := make(chan models.DisplaySnapshot, 1)

	d.subsMu.Lock()
	d.subs[ch] = struct{}{}
	d.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.subsMu.Lock()
			delete(d.subs, ch)
			d.subsMu.Unlock()
		})
	}
}

// publish hands snap to every subscriber, replacing a snapshot the
// subscriber has not consumed yet.
func (d *displayUsecase) publish(snap models.DisplaySnapshot) {
	d.subsMu.Lock()
	defer d.subsMu.Unlock()

	for ch := range d.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (d *displayUsecase) fetch(ctx context.Context) ([]models.Product, error) {
	body, err := d.client.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, err := models.ParseProducts(body)
	if err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (d *displayUsecase) commitLocked(products []models.Product) {
	d.products = products
	d.status = models.LoadStatusLoaded
}

func (d *displayUsecase) snapshotLocked() models.DisplaySnapshot {
	return models.DisplaySnapshot{
		Total:    len(d.products),
		Status:   d.status,
		Products: append([]models.Product{}, d.products...),
	}
}

package refresher

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"subgrip/internal/api"
	"subgrip/internal/domain"
	"subgrip/internal/eventbus"
	"subgrip/internal/store"
)

// Service drives subscription refreshes through the management API.
type Service interface {
	RefreshSub(ctx context.Context, id string) (*domain.Subscription, error)
	RefreshAll(ctx context.Context, subs []domain.Subscription)
	StartAutoRefresh(ctx context.Context, interval time.Duration)
}

// refreshService is the concrete implementation
type refreshService struct {
	bus        eventbus.EventBus
	client     *api.Client
	subs       store.SubscriptionStore
	workerPool chan struct{} // Semaphore for limiting concurrent refresh calls
}

const (
	maxConcurrentRefreshes = 5
	perSubTimeout          = 30 * time.Second
	bulkTimeout            = 120 * time.Second
)

// NewService creates a refresh service and subscribes it to refresh requests
func NewService(bus eventbus.EventBus, client *api.Client, subs store.SubscriptionStore) Service {
	rs := &refreshService{
		bus:        bus,
		client:     client,
		subs:       subs,
		workerPool: make(chan struct{}, maxConcurrentRefreshes),
	}

	bus.Subscribe(eventbus.EventRefreshRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RefreshRequestedEvent); ok {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), bulkTimeout)
				defer cancel()

				targets := rs.resolve(event.IDs)
				if len(targets) == 0 {
					rs.bus.Publish(eventbus.RefreshCompletedEvent{})
					return
				}
				rs.RefreshAll(ctx, targets)
			}()
		}
	})

	return rs
}

// resolve expands a refresh request into concrete subscriptions. An empty
// id list means every enabled subscription; explicit ids are honored even
// when the subscription is disabled.
func (rs *refreshService) resolve(ids []string) []domain.Subscription {
	var targets []domain.Subscription

	if len(ids) == 0 {
		for _, sub := range rs.subs.GetAllSubscriptions() {
			if sub.Enabled {
				targets = append(targets, *sub)
			}
		}
	} else {
		for _, id := range ids {
			if sub := rs.subs.GetSubscription(id); sub != nil {
				targets = append(targets, *sub)
			}
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })
	return targets
}

// RefreshAll refreshes the given subscriptions concurrently and reports
// per-item progress plus a final summary on the bus.
func (rs *refreshService) RefreshAll(ctx context.Context, subs []domain.Subscription) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
		succeeded int
		failed    int
	)
	total := len(subs)

	for _, sub := range subs {
		wg.Add(1)
		go func(s domain.Subscription) {
			defer wg.Done()

			_, err := rs.RefreshSub(ctx, s.ID)

			mu.Lock()
			completed++
			if err != nil {
				failed++
			} else {
				succeeded++
			}
			done := completed
			mu.Unlock()

			rs.bus.Publish(eventbus.RefreshProgressedEvent{
				Completed: done,
				Total:     total,
				Current:   s.Name,
			})
		}(sub)
	}

	// Wait with timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Warn("bulk refresh timed out", "total", total)
	}

	mu.Lock()
	s, f := succeeded, failed
	mu.Unlock()

	rs.bus.Publish(eventbus.RefreshCompletedEvent{Succeeded: s, Failed: f})
}

// RefreshSub refreshes one subscription and publishes the result.
func (rs *refreshService) RefreshSub(ctx context.Context, id string) (*domain.Subscription, error) {
	select {
	case rs.workerPool <- struct{}{}:
		defer func() { <-rs.workerPool }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	reqCtx, cancel := context.WithTimeout(ctx, perSubTimeout)
	defer cancel()

	sub, err := rs.client.RefreshSubscription(reqCtx, id)
	if err != nil {
		log.Error("refresh failed", "id", id, "err", err)

		// Surface the failure on the item itself so the list shows it
		if prev := rs.subs.GetSubscription(id); prev != nil {
			stale := *prev
			stale.Status.Error = err.Error()
			rs.bus.Publish(eventbus.SubUpdatedEvent{Sub: stale})
		}
		rs.bus.Publish(eventbus.ErrorEvent{Op: "refresh", Message: err.Error()})
		return nil, err
	}

	rs.bus.Publish(eventbus.SubUpdatedEvent{Sub: *sub})
	return sub, nil
}

// StartAutoRefresh refreshes all enabled subscriptions on a fixed interval
// until ctx is cancelled. It blocks, so run it in a goroutine.
func (rs *refreshService) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			targets := rs.resolve(nil)
			if len(targets) > 0 {
				refreshCtx, cancel := context.WithTimeout(ctx, bulkTimeout)
				rs.RefreshAll(refreshCtx, targets)
				cancel()
			}
		case <-ctx.Done():
			return
		}
	}
}

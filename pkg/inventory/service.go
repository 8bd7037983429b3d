package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/matst80/gilded-rose/pkg/storage"
	"github.com/matst80/gilded-rose/pkg/types"
	"go.uber.org/zap"
)

const MaxDays = 365

var ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxDays)

// ChangeNotifier is told about every persisted change to the inventory.
type ChangeNotifier interface {
	DayAdvanced(ctx context.Context, event types.DayAdvanced) error
	InventoryReset(ctx context.Context, event types.InventoryReset) error
}

type Option func(*Service)

func WithNotifier(n ChangeNotifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithDefaults replaces the inventory used to seed an empty store and on Reset.
func WithDefaults(fn func() []types.Item) Option {
	return func(s *Service) { s.defaults = fn }
}

func WithQueueSize(size int) Option {
	return func(s *Service) { s.queueSize = size }
}

// Service owns the persisted inventory. Advances and resets are serialized
// so concurrent requests never interleave a load with another save.
type Service struct {
	mu        sync.Mutex
	store     storage.InventoryStorage
	notifier  ChangeNotifier
	logger    *zap.Logger
	defaults  func() []types.Item
	queueSize int
	events    chan any
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewService(store storage.InventoryStorage, opts ...Option) *Service {
	s := &Service{
		store:     store,
		logger:    zap.NewNop(),
		defaults:  types.DefaultItems,
		queueSize: 64,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier != nil {
		s.events = make(chan any, s.queueSize)
		s.wg.Add(1)
		go s.publish()
	}
	return s
}

// List returns the current items, seeding the defaults on first use.
func (s *Service) List(ctx context.Context) ([]types.Item, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Items, nil
}

func (s *Service) Snapshot(ctx context.Context) (storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) AdvanceDay(ctx context.Context) ([]types.Item, error) {
	return s.AdvanceDays(ctx, 1)
}

// AdvanceDays applies the daily update days times, persists the result
// once and returns it.
func (s *Service) AdvanceDays(ctx context.Context, days int) ([]types.Item, error) {
	if days < 1 || days > MaxDays {
		return nil, ErrInvalidDays
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var violations []error
	next, err := s.store.UpdateInventory(ctx, func(current storage.Snapshot, found bool) (storage.Snapshot, error) {
		if !found {
			seeded, err := s.defaultSnapshot()
			if err != nil {
				return current, err
			}
			current = seeded
		}
		violations = violations[:0]
		items := current.Items
		for range days {
			next := types.UpdateInventory(items)
			if err := types.CheckInvariants(items, next); err != nil {
				violations = append(violations, err)
			}
			items = next
		}
		return storage.Snapshot{
			Day:       current.Day + days,
			Items:     items,
			UpdatedAt: time.Now().UTC(),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to advance inventory: %w", err)
	}
	for _, violation := range violations {
		invariantViolations.Inc()
		s.logger.Error("inventory update broke an invariant", zap.Int("day", next.Day), zap.Error(violation))
	}
	daysAdvanced.Add(float64(days))
	observeItems(next.Items)
	s.logger.Info("inventory advanced", zap.Int("day", next.Day), zap.Int("days", days), zap.Int("items", len(next.Items)))
	s.enqueue(types.NewDayAdvanced(next.Day, days, next.Items))
	return next.Items, nil
}

// Reset replaces the stored inventory with the defaults and day zero.
func (s *Service) Reset(ctx context.Context) ([]types.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.defaultSnapshot()
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveInventory(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("unable to save inventory: %w", err)
	}
	observeItems(snapshot.Items)
	s.logger.Info("inventory reset", zap.Int("items", len(snapshot.Items)))
	s.enqueue(types.NewInventoryReset(snapshot.Items))
	return snapshot.Items, nil
}

// Close stops the publisher after it has sent what was already queued.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
}

func (s *Service) load(ctx context.Context) (storage.Snapshot, error) {
	snapshot, err := s.store.LoadInventory(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("no stored inventory, seeding defaults")
		return s.seed(ctx)
	}
	if err != nil {
		return snapshot, fmt.Errorf("unable to load inventory: %w", err)
	}
	observeItems(snapshot.Items)
	return snapshot, nil
}

// seed stores the defaults unless another writer got there first.
func (s *Service) seed(ctx context.Context) (storage.Snapshot, error) {
	snapshot, err := s.store.UpdateInventory(ctx, func(current storage.Snapshot, found bool) (storage.Snapshot, error) {
		if found {
			return current, nil
		}
		return s.defaultSnapshot()
	})
	if err != nil {
		return snapshot, fmt.Errorf("unable to save inventory: %w", err)
	}
	observeItems(snapshot.Items)
	return snapshot, nil
}

func (s *Service) defaultSnapshot() (storage.Snapshot, error) {
	items := s.defaults()
	if err := types.ValidateItems(items); err != nil {
		return storage.Snapshot{}, fmt.Errorf("invalid default inventory: %w", err)
	}
	return storage.Snapshot{
		Day:       0,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (s *Service) enqueue(event any) {
	if s.events == nil {
		return
	}
	select {
	case <-s.done:
		s.logger.Warn("service closed, dropping event")
		eventsDropped.Inc()
		return
	default:
	}
	select {
	case s.events <- event:
	default:
		s.logger.Warn("publish queue full, dropping event")
		eventsDropped.Inc()
	}
}

func (s *Service) publish() {
	defer s.wg.Done()
	for {
		select {
		case event := <-s.events:
			s.send(event)
		case <-s.done:
			for {
				select {
				case event := <-s.events:
					s.send(event)
				default:
					return
				}
			}
		}
	}
}

func (s *Service) send(event any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var err error
	switch e := event.(type) {
	case types.DayAdvanced:
		err = s.notifier.DayAdvanced(ctx, e)
	case types.InventoryReset:
		err = s.notifier.InventoryReset(ctx, e)
	default:
		err = fmt.Errorf("unknown event %T", event)
	}
	if err != nil {
		publishErrors.Inc()
		s.logger.Error("unable to publish change", zap.Error(err))
	}
}

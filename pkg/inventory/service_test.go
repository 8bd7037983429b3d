package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matst80/gilded-rose/pkg/storage"
	"github.com/matst80/gilded-rose/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingNotifier struct {
	mu       sync.Mutex
	advanced []types.DayAdvanced
	resets   []types.InventoryReset
	err      error
}

func (n *recordingNotifier) DayAdvanced(_ context.Context, event types.DayAdvanced) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.advanced = append(n.advanced, event)
	return n.err
}

func (n *recordingNotifier) InventoryReset(_ context.Context, event types.InventoryReset) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets = append(n.resets, event)
	return n.err
}

type failingStorage struct {
	loadErr error
	saveErr error
}

func (f *failingStorage) LoadInventory(context.Context) (storage.Snapshot, error) {
	return storage.Snapshot{}, f.loadErr
}

func (f *failingStorage) SaveInventory(context.Context, storage.Snapshot) error {
	return f.saveErr
}

func (f *failingStorage) UpdateInventory(_ context.Context, fn storage.UpdateFunc) (storage.Snapshot, error) {
	if f.loadErr != nil && !errors.Is(f.loadErr, storage.ErrNotFound) {
		return storage.Snapshot{}, f.loadErr
	}
	next, err := fn(storage.Snapshot{}, f.loadErr == nil)
	if err != nil {
		return storage.Snapshot{}, err
	}
	if f.saveErr != nil {
		return storage.Snapshot{}, f.saveErr
	}
	return next, nil
}

func TestService_ListSeedsDefaults(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewService(store)
	defer svc.Close()

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultItems(), items)

	snapshot, err := store.LoadInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Day)
}

func TestService_AdvanceDay(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewService(storage.NewMemoryStorage(), WithNotifier(notifier))

	items, err := svc.AdvanceDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.UpdateInventory(types.DefaultItems()), items)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, listed)

	svc.Close()
	require.Len(t, notifier.advanced, 1)
	assert.Equal(t, 1, notifier.advanced[0].Day)
	assert.Equal(t, 1, notifier.advanced[0].Days)
	assert.NotEmpty(t, notifier.advanced[0].Id)
}

func TestService_AdvanceDays(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStorage())
	defer svc.Close()

	_, err := svc.AdvanceDays(ctx, 3)
	require.NoError(t, err)
	items, err := svc.AdvanceDays(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, types.UpdateInventoryDays(types.DefaultItems(), 10), items)

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, snapshot.Day)
}

func TestService_AdvanceDaysRejectsOutOfRange(t *testing.T) {
	svc := NewService(storage.NewMemoryStorage())
	defer svc.Close()
	for _, days := range []int{0, -1, MaxDays + 1} {
		_, err := svc.AdvanceDays(context.Background(), days)
		assert.ErrorIs(t, err, ErrInvalidDays)
	}
}

func TestService_ConcurrentAdvancesAreSerialized(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStorage())
	defer svc.Close()

	const workers = 40
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AdvanceDay(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, snapshot.Day)
	assert.Equal(t, types.UpdateInventoryDays(types.DefaultItems(), workers), snapshot.Items)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewService(storage.NewMemoryStorage(), WithNotifier(notifier))

	_, err := svc.AdvanceDays(ctx, 5)
	require.NoError(t, err)
	items, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultItems(), items)

	snapshot, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Day)

	svc.Close()
	assert.Len(t, notifier.advanced, 1)
	assert.Len(t, notifier.resets, 1)
}

func TestService_CustomDefaults(t *testing.T) {
	defaults := func() []types.Item {
		return []types.Item{types.NewItem(types.SulfurasName, 0, 80)}
	}
	svc := NewService(storage.NewMemoryStorage(), WithDefaults(defaults))
	defer svc.Close()

	items, err := svc.AdvanceDays(context.Background(), MaxDays)
	require.NoError(t, err)
	assert.Equal(t, defaults(), items)
}

func TestService_InvalidDefaults(t *testing.T) {
	svc := NewService(storage.NewMemoryStorage(), WithDefaults(func() []types.Item {
		return []types.Item{types.NewItem("Vest", 1, 70)}
	}))
	defer svc.Close()

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, types.ErrQualityOutOfRange)
}

func TestService_StorageErrors(t *testing.T) {
	boom := errors.New("boom")
	ctx := context.Background()

	svc := NewService(&failingStorage{loadErr: boom})
	defer svc.Close()
	_, err := svc.AdvanceDay(ctx)
	assert.ErrorIs(t, err, boom)

	svc2 := NewService(&failingStorage{loadErr: storage.ErrNotFound, saveErr: boom})
	defer svc2.Close()
	_, err = svc2.List(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestService_AdvanceSeedsEmptyStore(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := NewService(store)
	defer svc.Close()

	items, err := svc.AdvanceDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.UpdateInventory(types.DefaultItems()), items)

	snapshot, err := store.LoadInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Day)
}

func TestService_SeedKeepsExistingInventory(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	existing := storage.Snapshot{Day: 7, Items: []types.Item{types.NewItem(types.AgedBrieName, -5, 20)}}
	require.NoError(t, store.SaveInventory(ctx, existing))

	svc := NewService(store)
	defer svc.Close()
	snapshot, err := svc.seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, snapshot.Day)
	assert.Equal(t, existing.Items, snapshot.Items)
}

func TestService_PublishErrorsDoNotFailAdvance(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("broker down")}
	svc := NewService(storage.NewMemoryStorage(), WithNotifier(notifier))

	_, err := svc.AdvanceDay(context.Background())
	require.NoError(t, err)
	svc.Close()
	assert.Len(t, notifier.advanced, 1)
}

func TestService_CloseIsIdempotent(t *testing.T) {
	svc := NewService(storage.NewMemoryStorage(), WithNotifier(&recordingNotifier{}))
	svc.Close()
	svc.Close()

	// events after close are dropped, not sent on a stopped publisher
	_, err := svc.AdvanceDay(context.Background())
	assert.NoError(t, err)
}

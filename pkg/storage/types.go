package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/matst80/gilded-rose/pkg/types"
)

// ErrNotFound is returned when no inventory has been saved yet.
var ErrNotFound = errors.New("inventory not found")

// Snapshot is the persisted state of the shop: the items and how many days
// have been advanced since the inventory was seeded.
type Snapshot struct {
	Day       int          `json:"day"`
	Items     []types.Item `json:"items"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ErrConflict is returned when an update kept losing to concurrent writers.
var ErrConflict = errors.New("inventory changed concurrently")

// UpdateFunc gets the stored snapshot, or found false when nothing is stored
// yet, and returns the snapshot to store. It may be called more than once
// and must not have side effects.
type UpdateFunc func(current Snapshot, found bool) (Snapshot, error)

type InventoryStorage interface {
	LoadInventory(ctx context.Context) (Snapshot, error)
	SaveInventory(ctx context.Context, snapshot Snapshot) error
	// UpdateInventory runs load, fn and save as one atomic step against
	// every other writer of the same store.
	UpdateInventory(ctx context.Context, fn UpdateFunc) (Snapshot, error)
}

type DiskStorage struct {
	Shop       string
	RootFolder string

	mu sync.Mutex
}

func NewDiskStorage(shop, rootFolder string) *DiskStorage {
	return &DiskStorage{
		Shop:       shop,
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, ds.Shop, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixNano())
	return fileName, tmpFileName
}

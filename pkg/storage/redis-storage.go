package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/matst80/gilded-rose/pkg/common/jsoncompat"
	"github.com/redis/go-redis/v9"
)

// maxUpdateAttempts bounds optimistic retries when replicas race on an update.
const maxUpdateAttempts = 100

// RedisStorage shares one inventory between several service replicas.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(addr, password string, db int, prefix string) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStorageFromClient(rdb, prefix)
}

func NewRedisStorageFromClient(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{
		client: client,
		key:    fmt.Sprintf("%s:inventory", prefix),
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStorage) LoadInventory(ctx context.Context) (Snapshot, error) {
	return r.load(ctx, r.client)
}

// getter is satisfied by both the client and a watching transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisStorage) load(ctx context.Context, c getter) (Snapshot, error) {
	var snapshot Snapshot
	data, err := c.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return snapshot, ErrNotFound
	}
	if err != nil {
		return snapshot, err
	}
	err = jsoncompat.Unmarshal(data, &snapshot)
	return snapshot, err
}

func (r *RedisStorage) SaveInventory(ctx context.Context, snapshot Snapshot) error {
	data, err := jsoncompat.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

// UpdateInventory watches the inventory key and commits in a MULTI block, so
// a replica that loaded a snapshot another replica has since replaced starts
// over from the new one.
func (r *RedisStorage) UpdateInventory(ctx context.Context, fn UpdateFunc) (Snapshot, error) {
	var result Snapshot
	txf := func(tx *redis.Tx) error {
		current, err := r.load(ctx, tx)
		found := err == nil
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		next, err := fn(current, found)
		if err != nil {
			return err
		}
		data, err := jsoncompat.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, data, 0)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for range maxUpdateAttempts {
		err := r.client.Watch(ctx, txf, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return Snapshot{}, err
		}
		return result, nil
	}
	return Snapshot{}, ErrConflict
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}

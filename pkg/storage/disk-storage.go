package storage

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path"

	"github.com/matst80/gilded-rose/pkg/common/jsoncompat"
	"go.uber.org/zap"
)

const inventoryFile = "inventory.json"
const historyFile = "history.jz"

func (d *DiskStorage) LoadInventory(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadInventory()
}

func (d *DiskStorage) SaveInventory(ctx context.Context, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saveInventory(snapshot)
}

// UpdateInventory is atomic within one process. A data folder is not meant
// to be shared between replicas; use redis for that.
func (d *DiskStorage) UpdateInventory(ctx context.Context, fn UpdateFunc) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	current, err := d.loadInventory()
	found := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	next, err := fn(current, found)
	if err != nil {
		return Snapshot{}, err
	}
	if err := d.saveInventory(next); err != nil {
		return Snapshot{}, err
	}
	return next, nil
}

func (d *DiskStorage) loadInventory() (Snapshot, error) {
	var snapshot Snapshot
	err := d.LoadJson(&snapshot, inventoryFile)
	if errors.Is(err, os.ErrNotExist) {
		return snapshot, ErrNotFound
	}
	return snapshot, err
}

// saveInventory commits the inventory file. History is best effort and
// never fails a save that already reached the inventory file.
func (d *DiskStorage) saveInventory(snapshot Snapshot) error {
	if err := d.SaveJson(snapshot, inventoryFile); err != nil {
		return err
	}
	if err := d.appendHistory(snapshot); err != nil {
		zap.L().Warn("could not append history", zap.String("shop", d.Shop), zap.Int("day", snapshot.Day), zap.Error(err))
	}
	return nil
}

// LoadHistory returns every snapshot saved so far, oldest first. On a
// damaged file it returns the snapshots read before the damage and the error.
func (d *DiskStorage) LoadHistory() ([]Snapshot, error) {
	history := make([]Snapshot, 0)
	fileName, _ := d.GetFileName(historyFile)
	file, err := os.Open(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return history, nil
	}
	if err != nil {
		return history, err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if errors.Is(err, io.EOF) {
		return history, nil
	}
	if err != nil {
		return history, err
	}
	defer zipReader.Close()

	reader := bufio.NewReader(zipReader)
	for {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var snapshot Snapshot
			if jsonErr := jsoncompat.Unmarshal(line, &snapshot); jsonErr != nil {
				return history, jsonErr
			}
			history = append(history, snapshot)
		}
		if errors.Is(err, io.EOF) {
			return history, nil
		}
		if err != nil {
			return history, err
		}
	}
}

// appendHistory adds one gzip member holding a single JSON line, so a save
// costs the same no matter how long the history is.
func (d *DiskStorage) appendHistory(snapshot Snapshot) error {
	fileName, _ := d.GetFileName(historyFile)
	if err := d.ensureFolder(fileName); err != nil {
		return err
	}
	line, err := jsoncompat.Marshal(snapshot)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zipWriter := gzip.NewWriter(&buf)
	if _, err := zipWriter.Write(append(line, '\n')); err != nil {
		return err
	}
	if err := zipWriter.Close(); err != nil {
		return err
	}

	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (d *DiskStorage) ensureFolder(fileName string) error {
	return os.MkdirAll(path.Dir(fileName), 0o755)
}

func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)
	if err := d.ensureFolder(fileName); err != nil {
		return err
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	err = jsoncompat.Encode(file, data)
	file.Close()
	if err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	err = jsoncompat.Decode(file, data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

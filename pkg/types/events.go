package types

import (
	"time"

	"github.com/google/uuid"
)

// DayAdvanced is published after the shop inventory moved forward.
type DayAdvanced struct {
	Id         string    `json:"id"`
	Day        int       `json:"day"`
	Days       int       `json:"days"`
	AdvancedAt time.Time `json:"advanced_at"`
	Items      []Item    `json:"items"`
}

func NewDayAdvanced(day, days int, items []Item) DayAdvanced {
	return DayAdvanced{
		Id:         uuid.New().String(),
		Day:        day,
		Days:       days,
		AdvancedAt: time.Now().UTC(),
		Items:      items,
	}
}

// InventoryReset is published when the inventory was replaced by the defaults.
type InventoryReset struct {
	Id      string    `json:"id"`
	ResetAt time.Time `json:"reset_at"`
	Items   []Item    `json:"items"`
}

func NewInventoryReset(items []Item) InventoryReset {
	return InventoryReset{
		Id:      uuid.New().String(),
		ResetAt: time.Now().UTC(),
		Items:   items,
	}
}

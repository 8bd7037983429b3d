package inventory

import (
	"github.com/matst80/gilded-rose/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	daysAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gildedrose_days_advanced_total",
		Help: "The total number of days the inventory has been advanced",
	})
	totalItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gildedrose_items_total",
		Help: "The number of items in the inventory",
	})
	expiredItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gildedrose_expired_items",
		Help: "The number of items past their sell by date",
	})
	invariantViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gildedrose_invariant_violations_total",
		Help: "Updates that produced an item outside its bounds",
	})
	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gildedrose_events_dropped_total",
		Help: "Change events dropped because the publish queue was full",
	})
	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gildedrose_publish_errors_total",
		Help: "Change events the notifier failed to publish",
	})
)

func observeItems(items []types.Item) {
	expired := 0
	for _, item := range items {
		if item.IsExpired() && !item.IsLegendary() {
			expired++
		}
	}
	totalItems.Set(float64(len(items)))
	expiredItems.Set(float64(expired))
}

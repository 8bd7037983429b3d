package server

import (
	"context"
	"net/http"

	"github.com/matst80/gilded-rose/pkg/common"
	"github.com/matst80/gilded-rose/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Inventory is what the API needs from the inventory service.
type Inventory interface {
	List(ctx context.Context) ([]types.Item, error)
	AdvanceDays(ctx context.Context, days int) ([]types.Item, error)
	Reset(ctx context.Context) ([]types.Item, error)
}

type WebServer struct {
	Inventory   Inventory
	Cors        common.Cors
	FrontendUrl string
	Logger      *zap.Logger
	// Health is consulted by /health when set, e.g. a redis ping.
	Health func(ctx context.Context) error
}

func (ws *WebServer) Handler() http.Handler {
	if ws.Logger == nil {
		ws.Logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/items", common.JsonHandler(ws.Logger, ws.Cors, ws.ListItems))
	mux.HandleFunc("/api/update-quality", common.JsonHandler(ws.Logger, ws.Cors, ws.UpdateQuality))
	mux.HandleFunc("/api/reset", common.JsonHandler(ws.Logger, ws.Cors, ws.Reset))
	mux.HandleFunc("/health", ws.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/{$}", ws.HandleIndex)
	return mux
}

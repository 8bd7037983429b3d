package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/matst80/gilded-rose/pkg/common"
	"github.com/matst80/gilded-rose/pkg/inventory"
	"github.com/matst80/gilded-rose/pkg/types"
	"go.uber.org/zap"
)

type UpdateResponse struct {
	Success bool         `json:"success"`
	Items   []types.Item `json:"items"`
}

func methodNotAllowed() error {
	return common.NewHttpError(http.StatusMethodNotAllowed, "method not allowed")
}

func (ws *WebServer) ListItems(r *http.Request) (any, error) {
	if r.Method != http.MethodGet {
		return nil, methodNotAllowed()
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := ws.Inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	return types.Items{Items: items}, nil
}

// UpdateQuality advances the inventory one day, or ?days=n days.
func (ws *WebServer) UpdateQuality(r *http.Request) (any, error) {
	if r.Method != http.MethodPost {
		return nil, methodNotAllowed()
	}
	req, err := advanceRequestFromQuery(r.URL.Query())
	if err != nil {
		return nil, common.NewHttpError(http.StatusBadRequest, err.Error())
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := ws.Inventory.AdvanceDays(ctx, req.Days)
	if errors.Is(err, inventory.ErrInvalidDays) {
		return nil, common.NewHttpError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return nil, err
	}
	ws.Logger.Debug("quality updated", zap.Int("days", req.Days), zap.Int("items", len(items)))
	return UpdateResponse{Success: true, Items: items}, nil
}

func (ws *WebServer) Reset(r *http.Request) (any, error) {
	if r.Method != http.MethodPost {
		return nil, methodNotAllowed()
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := ws.Inventory.Reset(ctx)
	if err != nil {
		return nil, err
	}
	return types.Items{Items: items}, nil
}

func (ws *WebServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if ws.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ws.Health(ctx); err != nil {
			ws.Logger.Warn("health check failed", zap.Error(err))
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// HandleIndex sends browsers hitting the API root to the frontend.
func (ws *WebServer) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if ws.FrontendUrl == "" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, ws.FrontendUrl, http.StatusFound)
}

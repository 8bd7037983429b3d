package main

import (
	"context"
	"fmt"

	"github.com/matst80/gilded-rose/pkg/common"
	"github.com/matst80/gilded-rose/pkg/config"
	"github.com/matst80/gilded-rose/pkg/inventory"
	"github.com/matst80/gilded-rose/pkg/logging"
	"github.com/matst80/gilded-rose/pkg/messaging"
	"github.com/matst80/gilded-rose/pkg/server"
	"github.com/matst80/gilded-rose/pkg/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inventory API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			return err
		}
		defer logger.Sync()
		undo := zap.ReplaceGlobals(logger)
		defer undo()
		return serve(cmd.Context(), cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, health, closeStore, err := openStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []inventory.Option{inventory.WithLogger(logger)}
	if cfg.Rabbit.Url != "" {
		notifier, err := messaging.NewAmqpNotifier(cfg.Rabbit.Url, cfg.Rabbit.Prefix)
		if err != nil {
			return fmt.Errorf("unable to connect to rabbitmq: %w", err)
		}
		defer notifier.Close()
		opts = append(opts, inventory.WithNotifier(notifier))
		logger.Info("publishing inventory changes", zap.String("prefix", cfg.Rabbit.Prefix))
	}

	svc := inventory.NewService(store, opts...)
	if _, err := svc.List(ctx); err != nil {
		svc.Close()
		return fmt.Errorf("unable to load inventory: %w", err)
	}

	ws := &server.WebServer{
		Inventory:   svc,
		Cors:        cfg,
		FrontendUrl: cfg.FrontendUrl,
		Logger:      logger,
		Health:      health,
	}

	timeouts := common.LoadTimeoutConfig(common.DefaultTimeoutConfig())
	httpServer := common.NewServerWithTimeouts(nil, timeouts)
	httpServer.Addr = cfg.ListenAddress
	httpServer.Handler = ws.Handler()

	return common.RunServerWithShutdown(ctx, httpServer, "inventory api", logger, timeouts.Shutdown, timeouts.Hook,
		func(context.Context) error {
			svc.Close()
			return nil
		})
}

func openStorage(cfg *config.Config, logger *zap.Logger) (storage.InventoryStorage, func(context.Context) error, func(), error) {
	switch cfg.Storage {
	case config.RedisStorage:
		rs := storage.NewRedisStorage(cfg.Redis.Url, cfg.Redis.Password, cfg.Redis.DB, cfg.Shop)
		if err := rs.Ping(context.Background()); err != nil {
			rs.Close()
			return nil, nil, nil, fmt.Errorf("unable to reach redis: %w", err)
		}
		logger.Info("using redis storage", zap.String("addr", cfg.Redis.Url))
		return rs, rs.Ping, func() { rs.Close() }, nil
	case config.DiskStorage:
		logger.Info("using disk storage", zap.String("dir", cfg.DataDir))
		return storage.NewDiskStorage(cfg.Shop, cfg.DataDir), nil, func() {}, nil
	default:
		logger.Info("using in memory storage")
		return storage.NewMemoryStorage(), nil, func() {}, nil
	}
}

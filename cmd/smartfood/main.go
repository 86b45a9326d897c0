package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dominiofast/smartfood-landing-sub000/internal/app/api"
	"github.com/dominiofast/smartfood-landing-sub000/internal/board"
	"github.com/dominiofast/smartfood-landing-sub000/internal/catalog"
	"github.com/dominiofast/smartfood-landing-sub000/internal/common/httpx"
	"github.com/dominiofast/smartfood-landing-sub000/internal/common/logger"
	"github.com/dominiofast/smartfood-landing-sub000/internal/config"
	"github.com/dominiofast/smartfood-landing-sub000/internal/connections/database"
	"github.com/dominiofast/smartfood-landing-sub000/internal/connections/rabbitmq"
	"github.com/dominiofast/smartfood-landing-sub000/internal/connections/redisconn"
	"github.com/dominiofast/smartfood-landing-sub000/internal/notify"
	"github.com/dominiofast/smartfood-landing-sub000/internal/snapshot"
)

func main() {
	mode := flag.String("mode", "", "api | notifier")
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	port := flag.Int("port", 0, "override http port for the api mode")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": *cfgPath})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	switch *mode {
	case "api":
		lg.Info("service_started", map[string]any{
			"service": "api", "port": cfg.HTTP.Port, "storage": cfg.Storage.Backend,
		})
		if err := runAPI(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notifier":
		lg.Info("service_started", map[string]any{"service": "notifier"})
		if err := runNotifier(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: api | notifier")
		os.Exit(2)
	}
}

func runAPI(ctx context.Context, cfg *config.Config) error {
	docs, closeStore, err := openDocStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	store := snapshot.NewStore(docs)

	var events board.EventPublisher
	if cfg.RabbitMQ.Enabled {
		rmq, err := dialBroker(cfg.RabbitMQ)
		if err != nil {
			return fmt.Errorf("rabbitmq dial: %w", err)
		}
		defer rmq.Close()
		if err := rmq.DeclareAll(); err != nil {
			return fmt.Errorf("rabbitmq declare: %w", err)
		}
		events = notify.NewPublisher(rmq)
	}

	catalogSvc := catalog.NewService(store)
	boardSvc := board.NewService(store, events)
	handler := api.NewHandler(catalogSvc, boardSvc)

	srv := httpx.New(":"+strconv.Itoa(cfg.HTTP.Port), api.NewRouter(handler))
	return srv.Run(ctx)
}

func runNotifier(ctx context.Context, cfg *config.Config) error {
	rmq, err := dialBroker(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer rmq.Close()
	if err := rmq.DeclareAll(); err != nil {
		return fmt.Errorf("rabbitmq declare: %w", err)
	}
	return notify.NewSubscriber(rmq).Run(ctx)
}

func dialBroker(cfg config.RabbitMQConfig) (*rabbitmq.Client, error) {
	if cfg.UseTLS {
		return rabbitmq.DialTLS(cfg)
	}
	return rabbitmq.Dial(cfg)
}

func openDocStore(ctx context.Context, cfg *config.Config) (snapshot.DocStore, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		return snapshot.NewMemoryStore(), func() {}, nil
	case "sqlite":
		s, err := snapshot.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "postgres":
		db, err := database.ConnectDB(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		s, err := snapshot.NewPostgresStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, func() { _ = db.Close() }, nil
	case "redis":
		client, err := redisconn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return snapshot.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

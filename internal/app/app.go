package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gfdmit/pastebin/config"
	v1 "github.com/gfdmit/pastebin/internal/handlers/http/v1"
	"github.com/gfdmit/pastebin/internal/httpserver"
	"github.com/gfdmit/pastebin/internal/metrics"
	"github.com/gfdmit/pastebin/internal/repository"
	"github.com/gfdmit/pastebin/internal/repository/memory"
	"github.com/gfdmit/pastebin/internal/repository/postgres"
	"github.com/gfdmit/pastebin/internal/service"
)

// Run connects the storage first and only then starts listening.
func Run(conf config.Config) error {
	ctx := context.Background()

	repo, err := newRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("error when setting up repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Println("[SHUTDOWN] error when closing repository:", err)
		}
	}()

	service := service.New(repo)

	handler, err := v1.New(service, metrics.New())
	if err != nil {
		return fmt.Errorf("error when setting up handler: %w", err)
	}

	httpserver := httpserver.New(conf.HTTPServer, handler)

	return httpserver.Run(ctx)
}

func newRepository(ctx context.Context, conf config.Config) (repository.Repository, error) {
	switch conf.Storage.Driver {
	case config.DriverMemory:
		log.Println("[SETUP] using in-memory storage, data will not survive a restart")
		return memory.New(), nil
	default:
		return postgres.New(ctx, conf.Postgres)
	}
}

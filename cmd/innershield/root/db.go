package root

import (
	"context"
	"os"

	"github.com/vitandes/innershield/internal/config"
	"github.com/vitandes/innershield/internal/engine"
	"github.com/vitandes/innershield/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Database.Path
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	logger := cfg.Logger(os.Stderr)
	return engine.NewService(db, engine.WithLogger(logger)), cleanup, nil
}

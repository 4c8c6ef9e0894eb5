package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/saifltr/library-management-system/internal/cli"
	"github.com/saifltr/library-management-system/internal/config"
	"github.com/saifltr/library-management-system/internal/logger"
	"github.com/saifltr/library-management-system/internal/registry"
	"github.com/saifltr/library-management-system/internal/server"
	"github.com/saifltr/library-management-system/internal/storage"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		stdlog.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	log.Debug().Any("cfg", cfg).Send()

	booksStore := newStore(cfg, cfg.BooksFile, "books")
	usersStore := newStore(cfg, cfg.UsersFile, "users")
	loansStore := newStore(cfg, cfg.CheckoutsFile, "checkouts")

	books, err := registry.NewBookRegistry(booksStore)
	if err != nil {
		log.Fatal().Err(err).Msg("loading books failed")
	}
	users, err := registry.NewUserRegistry(usersStore)
	if err != nil {
		log.Fatal().Err(err).Msg("loading users failed")
	}
	loans, err := registry.NewCheckoutCoordinator(loansStore, books, users)
	if err != nil {
		log.Fatal().Err(err).Msg("loading checkouts failed")
	}

	if !cfg.Serve {
		cli.New(books, users, loans).Run()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		<-c
		log.Debug().Msg("ctx cancel; caught os signal")
		cancel()
	}()

	serv, err := server.New(*cfg, books, users, loans)
	if err != nil {
		log.Fatal().Err(err).Msg("server init failed")
	}
	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		log.Debug().Msg("error chan listener started")
		defer log.Debug().Msg("error chan listener - end")
		return <-serv.ErrChan
	})
	group.Go(func() error {
		<-gCtx.Done()
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stopping reason", err.Error()).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}

// newStore picks the backend per collection. Postgres falls back to the
// in-memory store when the database cannot be reached.
func newStore(cfg *config.Config, path, collection string) storage.Store {
	log := logger.Get()
	switch cfg.Storage {
	case "memory":
		return storage.NewMemStore()
	case "postgres":
		if err := storage.Migrations(cfg.DBDsn, cfg.MigratePath); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		store, err := storage.NewDB(context.TODO(), cfg.DBDsn, collection)
		if err != nil {
			log.Error().Err(err).Msg("connecting to database failed")
			return storage.NewMemStore()
		}
		return store
	default:
		if path == config.InMemory {
			return storage.NewMemStore()
		}
		return storage.NewFileStore(path)
	}
}

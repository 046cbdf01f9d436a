package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"blogd/config"
	"blogd/internal/adapter/in/web"
	"blogd/internal/adapter/out/access"
	inmemorybus "blogd/internal/adapter/out/pubsub/inmemory"
	"blogd/internal/adapter/out/render"
	"blogd/internal/adapter/out/sanitize"
	"blogd/internal/adapter/out/spam"
	memstore "blogd/internal/adapter/out/storage/inmemory"
	pgstore "blogd/internal/adapter/out/storage/postgres"
	"blogd/internal/db"
	"blogd/internal/service"
	"blogd/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		postStorage    service.PostStorage
		commentStorage service.CommentStorage
		txManager      service.TxManager
		pool           *pgxpool.Pool
	)

	switch cfg.StorageType {
	case "postgres":
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := runMigrations(pool); err != nil {
			return nil, err
		}
		postStorage = pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter)
		commentStorage = pgstore.NewCommentStorage(pool, trmpgx.DefaultCtxGetter)
		txManager = manager.Must(trmpgx.NewDefaultFactory(pool))

	default:
		postStorage = memstore.NewPostStorage()
		commentStorage = memstore.NewCommentStorage()
		txManager = memstore.NewTxManager()
	}

	accessChecker := access.NewStaticChecker(cfg.Blog.PermsEveryone, cfg.Blog.PermsUsers)
	renderer := render.New()
	filter := sanitize.NewCommentFilter()
	spamChecker := spam.NewKeywordChecker(cfg.Blog.SpamBlocklist)
	bus := inmemorybus.New(0)

	postSvc := service.NewPostService(postStorage, commentStorage, renderer, accessChecker)
	commentSvc := service.NewCommentService(
		commentStorage,
		postStorage,
		accessChecker,
		filter,
		spamChecker,
		bus,
		txManager,
		service.CommentPolicy{
			MinIdle:             time.Duration(cfg.Blog.CommentMinIdleSeconds) * time.Second,
			MaxLinks:            cfg.Blog.CommentMaxLinks,
			RequireNameAndEmail: cfg.Blog.CommentRequireNameEmail,
		},
	)

	store := sessions.NewCookieStore([]byte(cfg.HTTP.SessionSecret))
	handler := web.NewHandler(postSvc, commentSvc, store)

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

func runMigrations(pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(db.MigrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		if a.pool != nil {
			a.pool.Close()
		}
		return nil

	case err := <-errCh:
		if a.pool != nil {
			a.pool.Close()
		}
		return err
	}
}

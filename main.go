package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auction "waste-auction/internal/auctionService"
	"waste-auction/internal/broadcast"
	"waste-auction/internal/clock"
	"waste-auction/internal/config"
	"waste-auction/internal/db"
	"waste-auction/internal/repository"
	"waste-auction/internal/server"
	handler "waste-auction/services/auction/handler"
	"waste-auction/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ledger, cleanup, err := buildLedger(ctx, cfg)
	if err != nil {
		utils.Fatal("cannot initialize ledger store", map[string]any{"error": err.Error()})
	}
	defer cleanup()

	hub := broadcast.NewHub()
	defer hub.Close()
	sink := auction.MultiSink{auction.LogSink{}, hub}
	clk := clock.NewSystem()

	lifecycleSvc := auction.NewLifecycleService(ledger, sink, clk)
	bidSvc := auction.NewBidService(ledger, sink, clk)
	winnerSvc := auction.NewWinnerService(ledger, sink, clk)
	gatePassSvc := auction.NewGatePassService(ledger, auction.NoopBlobStore{}, clk)
	sweeper := auction.NewSweeper(ledger, sink, clk, cfg.SweepInterval)

	go sweeper.Run(ctx)

	auctionHandler := handler.NewAuctionHandler(lifecycleSvc, bidSvc, winnerSvc, gatePassSvc, sweeper)
	router := server.SetupRouter(auctionHandler, hub)

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router}
	go func() {
		utils.Info("auction server listening", map[string]any{"address": cfg.ServerAddress})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
}

// buildLedger selects the ledger store implementation from configuration
func buildLedger(ctx context.Context, cfg config.Config) (repository.AuctionLedger, func(), error) {
	if cfg.StoreDriver != "postgres" {
		return repository.NewMemoryLedger(), func() {}, nil
	}

	if err := runDBMigration(cfg.MigrationURL, cfg.PostgresConn); err != nil {
		return nil, nil, err
	}
	pool, err := db.InitDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresLedger(pool), pool.Close, nil
}

func runDBMigration(migrationURL, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}
	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	utils.Info("db migrated successfully", nil)
	return nil
}

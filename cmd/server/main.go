package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/moneybook-backend/internal/adapter/grpc"
	moneybookv1 "github.com/simaogato/moneybook-backend/internal/adapter/grpc/moneybook/v1"
	"github.com/simaogato/moneybook-backend/internal/adapter/notifier"
	"github.com/simaogato/moneybook-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/moneybook-backend/internal/config"
	"github.com/simaogato/moneybook-backend/internal/scheduler"
	"github.com/simaogato/moneybook-backend/internal/usecase/asset"
	"github.com/simaogato/moneybook-backend/internal/usecase/book"
	"github.com/simaogato/moneybook-backend/internal/usecase/ledger"
	"github.com/simaogato/moneybook-backend/internal/usecase/schedule"
	"github.com/simaogato/moneybook-backend/internal/usecase/transfer"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Setup database and run migrations
	db, err := postgres.NewDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 3. Initialize repositories (Postgres)
	bookRepo := postgres.NewBookRepository(db)
	assetRepo := postgres.NewAssetRepository(db)
	assetGroupRepo := postgres.NewAssetGroupRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	transferRepo := postgres.NewTransferRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	txManager := postgres.NewTxManager(db)

	// 4. Initialize services (use cases)
	mutator := ledger.NewBalanceMutator(assetRepo)
	ledgerService := ledger.NewService(txManager, bookRepo, assetRepo, recordRepo, mutator, cfg.Timezone)
	transferService := transfer.NewService(txManager, bookRepo, assetRepo, transferRepo, mutator, cfg.Timezone)
	scheduleService := schedule.NewService(txManager, bookRepo, assetRepo, scheduleRepo, ledgerService, notifier.NewLogNotifier(), cfg.Timezone)
	assetService := asset.NewService(txManager, assetRepo, assetGroupRepo)
	bookService := book.NewService(bookRepo)

	// 5. Start the schedule sweep loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.NewScheduler(scheduleService, cfg.SweepInterval).Start(ctx)

	// 6. Start gRPC server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.APIToken)),
	)

	grpcAdapter := grpcadapter.NewServer(ledgerService, transferService, scheduleService, assetService, bookService)
	moneybookv1.RegisterMoneybookServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddress, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddress)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown: stop the sweep loop, then drain in-flight RPCs
	waitForShutdown(grpcServer, cancel)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	cancel()
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bkpsdm/simpeg-grpc/internal/adapters/emsifa"
	"github.com/bkpsdm/simpeg-grpc/internal/adapters/repository/postgres"
	"github.com/bkpsdm/simpeg-grpc/internal/core/mutasi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/pegawai"
	"github.com/bkpsdm/simpeg-grpc/internal/core/posisi"
	"github.com/bkpsdm/simpeg-grpc/internal/core/riwayat"
	"github.com/bkpsdm/simpeg-grpc/internal/core/user"
	"github.com/bkpsdm/simpeg-grpc/internal/platform/config"
	pg "github.com/bkpsdm/simpeg-grpc/internal/platform/db/postgres"
	"github.com/bkpsdm/simpeg-grpc/internal/platform/logging"
	"github.com/bkpsdm/simpeg-grpc/internal/platform/server"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(os.Getenv("APP_ENV") != "production")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database pool", zap.Error(err))
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	pegawaiRepo := postgres.NewPegawaiRepository(dbPool)
	riwayatRepo := postgres.NewRiwayatRepository(dbPool)
	mutasiRepo := postgres.NewMutasiRepository(dbPool)
	posisiRepo := postgres.NewPosisiRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	pegawaiSvc := pegawai.NewService(pegawaiRepo, nil, txManager)
	riwayatSvc := riwayat.NewService(riwayatRepo, nil, txManager)
	posisiSvc := posisi.NewService(posisiRepo, nil, txManager)
	mutasiSvc := mutasi.NewService(
		mutasiRepo,
		postgres.NewMutasiPegawaiDirectory(dbPool),
		postgres.NewMutasiRiwayatLedger(dbPool),
		postgres.NewMutasiPosisiRegistry(dbPool),
		nil,
		txManager,
	)

	tokens := user.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)
	userSvc := user.NewService(userRepo, nil, txManager, tokens)

	wilayahClient := emsifa.NewClient(cfg.Wilayah.BaseURL, cfg.Wilayah.Timeout, logger)

	grpcServer := server.New(cfg.Server.ListenAddr, logger, server.Services{
		Pegawai: pegawaiSvc,
		Riwayat: riwayatSvc,
		Mutasi:  mutasiSvc,
		Posisi:  posisiSvc,
		User:    userSvc,
		Wilayah: wilayahClient,
	})

	logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

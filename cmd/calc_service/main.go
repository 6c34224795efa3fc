package main

import (
	"context"
	"fmt"
	"net"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"github.com/GGmuzem/web-calculator/internal/config"
	"github.com/GGmuzem/web-calculator/internal/logger"
	"github.com/GGmuzem/web-calculator/internal/rpc"
	"github.com/GGmuzem/web-calculator/internal/server"
)

var (
	// Version is set at build time
	Version = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("запуск сервиса калькулятора", zap.String("version", Version))
	log.Info("конфигурация загружена", zap.String("config", cfg.String()))

	httpServer, err := server.New(cfg.HTTPAddr(), cfg.ReadHeaderTimeout, log)
	if err != nil {
		log.Fatal("ошибка создания HTTP сервера", zap.Error(err))
	}
	grpcServer := rpc.NewServer(cfg.GRPCAddr(), log)

	// Порты открываем заранее, чтобы ошибка занятости порта остановила запуск
	httpListener, err := net.Listen("tcp", cfg.HTTPAddr())
	if err != nil {
		log.Fatal("ошибка открытия HTTP порта", zap.Error(err))
	}
	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Fatal("ошибка открытия gRPC порта", zap.Error(err))
	}

	go func() {
		if err := httpServer.Serve(httpListener); err != nil {
			log.Fatal("ошибка HTTP сервера", zap.Error(err))
		}
	}()
	go func() {
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Fatal("ошибка gRPC сервера", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": httpServer.Shutdown,
			"grpc": grpcServer.Shutdown,
		},
	)

	exitCode := <-wait
	log.Info("сервис остановлен", zap.Int("exit_code", exitCode))
	_ = log.Sync()
	os.Exit(exitCode)
}

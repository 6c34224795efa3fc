package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GGmuzem/web-calculator/internal/client"
	"github.com/GGmuzem/web-calculator/internal/logger"
)

func main() {
	addr := flag.String("addr", "localhost:50052", "адрес gRPC сервера")
	timeout := flag.Duration("timeout", 5*time.Second, "таймаут одного вызова")
	parallel := flag.Int("parallel", 4, "сколько выражений вычислять одновременно")
	logLevel := flag.String("log-level", "warn", "уровень логирования")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] expression...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New(*logLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	c, err := client.NewGRPCClient(*addr, *timeout, log)
	if err != nil {
		log.Fatal("ошибка подключения к серверу", zap.Error(err))
	}

	exitCode := 0
	for _, outcome := range c.CalculateAll(context.Background(), flag.Args(), *parallel) {
		if outcome.Err != nil {
			exitCode = 1
			fmt.Fprintf(os.Stderr, "%s: %v\n", outcome.Expression, outcome.Err)
			continue
		}
		if outcome.Response.Failed() {
			fmt.Printf("%s: %s\n", outcome.Expression, outcome.Text())
			continue
		}
		fmt.Printf("%s = %s\n", outcome.Expression, outcome.Text())
	}

	if err := c.Close(); err != nil {
		log.Debug("ошибка закрытия соединения", zap.Error(err))
	}
	_ = log.Sync()
	os.Exit(exitCode)
}

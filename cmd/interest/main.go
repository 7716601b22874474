package main

import (
	"fmt"
	"os"

	"github.com/yama6a/shared-rate/internal/app/demo"
	"github.com/yama6a/shared-rate/internal/pkg/account"
	"github.com/yama6a/shared-rate/internal/pkg/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const interestIncrement = 0.02

func main() {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	loggerConfig.DisableStacktrace = true
	logger, err := loggerConfig.Build()
	noErr(err)
	defer func() { _ = logger.Sync() }()

	accounts := []*account.Account{
		account.New("Bill Gates", 100000000),
		account.New("Larry Page", 10000000),
	}

	memStore := store.NewMemoryStore(logger.Named("Store"))
	svc := demo.NewService(memStore, accounts, interestIncrement, os.Stdout, logger.Named("Demo Svc"))

	if err := svc.Run(); err != nil {
		logger.Error("demo run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1) //nolint:gocritic // logger already flushed
	}
}

func noErr(err error) {
	if err != nil {
		fmt.Printf("failed to initialize something important: %v\n", err)
		panic(err)
	}
}
